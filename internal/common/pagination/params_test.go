package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-backend/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{
		DefaultLimit: 20,
		MaxLimit:     100,
		MaxOffset:    10_000,
	}

	tests := []struct {
		name      string
		query     string
		want      pagination.Params
		wantError bool
	}{
		{
			name:  "valid parameters",
			query: "offset=40&limit=30",
			want: pagination.Params{
				Offset: 40,
				Limit:  30,
			},
			wantError: false,
		},
		{
			name:  "no parameters (use defaults)",
			query: "",
			want: pagination.Params{
				Offset: 0,
				Limit:  20,
			},
			wantError: false,
		},
		{
			name:  "only offset parameter",
			query: "offset=100",
			want: pagination.Params{
				Offset: 100,
				Limit:  20,
			},
			wantError: false,
		},
		{
			name:  "search and sort passthrough",
			query: "search=go&order_by=published_at&sort_direction=desc",
			want: pagination.Params{
				Offset:        0,
				Limit:         20,
				Search:        "go",
				OrderBy:       "published_at",
				SortDirection: "desc",
			},
			wantError: false,
		},
		{
			name:      "negative offset",
			query:     "offset=-1",
			wantError: true,
		},
		{
			name:      "offset above maximum",
			query:     "offset=10001",
			wantError: true,
		},
		{
			name:  "offset at maximum",
			query: "offset=10000",
			want: pagination.Params{
				Offset: 10_000,
				Limit:  20,
			},
			wantError: false,
		},
		{
			name:      "zero limit",
			query:     "limit=0",
			wantError: true,
		},
		{
			name:      "limit above maximum",
			query:     "limit=101",
			wantError: true,
		},
		{
			name:      "non-numeric offset",
			query:     "offset=abc",
			wantError: true,
		},
		{
			name:      "non-numeric limit",
			query:     "limit=ten",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/posts?"+tt.query, nil)
			got, err := pagination.ParseQueryParams(r, config)
			if tt.wantError {
				if err == nil {
					t.Fatalf("ParseQueryParams(%q) expected error, got %+v", tt.query, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams(%q) err=%v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}
