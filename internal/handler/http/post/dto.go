// Package post provides HTTP handlers for the public post endpoints.
// It includes handlers for the paginated listing, permalink lookup, and
// random selection.
package post

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domain/entity"
	postUC "blog-backend/internal/usecase/post"
)

// AuthorDTO represents the embedded author of a post.
type AuthorDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username" example:"alice"`
}

// TagDTO represents a tag attached to a post.
type TagDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"go"`
}

// DTO represents the JSON structure for post data transfer.
type DTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" example:"Pagination without tears"`
	Body        string    `json:"body"`
	Slug        string    `json:"slug" example:"pagination-without-tears"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	ViewCount   int64     `json:"view_count" example:"42"`
	LikeCount   int64     `json:"like_count" example:"7"`
	PublishedAt time.Time `json:"published_at" example:"2026-08-01T10:00:00Z"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Author      AuthorDTO `json:"author"`
	Tags        []TagDTO  `json:"tags"`
}

// toDTO converts a use case row into its wire representation.
// Tags always serializes as an array, never null.
func toDTO(p postUC.PostWithTags) DTO {
	tags := make([]TagDTO, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, TagDTO{ID: t.ID, Name: t.Name})
	}
	return DTO{
		ID:          p.Post.ID,
		Title:       p.Post.Title,
		Body:        p.Post.Body,
		Slug:        p.Post.Slug,
		PhotoURL:    p.Post.PhotoURL,
		ViewCount:   p.Post.ViewCount,
		LikeCount:   p.Post.LikeCount,
		PublishedAt: p.Post.PublishedAt,
		CreatedAt:   p.Post.CreatedAt,
		UpdatedAt:   p.Post.UpdatedAt,
		Author:      AuthorDTO{ID: p.Author.ID, Username: p.Author.Username},
		Tags:        tags,
	}
}

// toDTOs converts a page of rows.
func toDTOs(rows []postUC.PostWithTags) []DTO {
	dtos := make([]DTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toDTO(row))
	}
	return dtos
}

// isValidationError reports whether err is a user-facing validation error.
func isValidationError(err error) bool {
	var vErr *entity.ValidationError
	return errors.As(err, &vErr)
}
