package tag_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"blog-backend/internal/common/pagination"
	"blog-backend/internal/domain/entity"
	tagUC "blog-backend/internal/usecase/tag"
)

type stubTagRepo struct {
	tags []entity.Tag
	err  error
}

func (s *stubTagRepo) ListForPosts(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]entity.Tag, error) {
	return nil, s.err
}

func (s *stubTagRepo) List(_ context.Context, offset, limit int) ([]entity.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	if offset >= len(s.tags) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.tags) {
		end = len(s.tags)
	}
	return s.tags[offset:end], nil
}

func (s *stubTagRepo) Count(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.tags)), nil
}

func TestService_List(t *testing.T) {
	repo := &stubTagRepo{tags: []entity.Tag{
		{ID: uuid.New(), Name: "databases"},
		{ID: uuid.New(), Name: "go"},
		{ID: uuid.New(), Name: "postgres"},
	}}
	svc := &tagUC.Service{Tags: repo}

	got, err := svc.List(context.Background(), pagination.Params{Offset: 0, Limit: 2})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}

	if len(got.Data) != 2 {
		t.Errorf("len(Data) = %d, want 2", len(got.Data))
	}
	want := pagination.Metadata{TotalItems: 3, Offset: 0, Limit: 2, TotalPages: 2}
	if got.Meta != want {
		t.Errorf("Meta = %+v, want %+v", got.Meta, want)
	}
}

func TestService_List_Empty(t *testing.T) {
	svc := &tagUC.Service{Tags: &stubTagRepo{}}

	got, err := svc.List(context.Background(), pagination.Params{Offset: 0, Limit: 20})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if got.Data == nil {
		t.Error("Data is nil, want empty slice")
	}
	if got.Meta.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", got.Meta.TotalPages)
	}
}

func TestService_List_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := &tagUC.Service{Tags: &stubTagRepo{err: storeErr}}

	_, err := svc.List(context.Background(), pagination.Params{Limit: 20})
	if !errors.Is(err, storeErr) {
		t.Errorf("error = %v, want wrapped %v", err, storeErr)
	}
}
