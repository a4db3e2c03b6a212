package repository

import (
	"errors"
	"testing"

	"blog-backend/internal/domain/entity"
)

func TestParseSortField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    SortField
		wantErr bool
	}{
		{"empty defaults to id", "", SortByID, false},
		{"id", "id", SortByID, false},
		{"title", "title", SortByTitle, false},
		{"published_at", "published_at", SortByPublishedAt, false},
		{"view_count", "view_count", SortByViewCount, false},
		{"like_count", "like_count", SortByLikeCount, false},
		{"unknown column", "drop_table", "", true},
		{"raw SQL", "id; DROP TABLE posts", "", true},
		{"case sensitive", "Title", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSortField(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSortField(%q) expected error, got %q", tt.input, got)
				}
				var vErr *entity.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("error = %v, want *entity.ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSortField(%q) err=%v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSortField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSortDirection(t *testing.T) {
	t.Parallel()

	if dir, err := ParseSortDirection(""); err != nil || dir != SortAsc {
		t.Errorf("empty direction = (%q, %v), want (asc, nil)", dir, err)
	}
	if dir, err := ParseSortDirection("desc"); err != nil || dir != SortDesc {
		t.Errorf("desc = (%q, %v), want (desc, nil)", dir, err)
	}
	if _, err := ParseSortDirection("sideways"); err == nil {
		t.Error("invalid direction should be rejected")
	}
}
