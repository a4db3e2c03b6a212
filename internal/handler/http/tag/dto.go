// Package tag provides HTTP handlers for the tag vocabulary endpoints.
package tag

import (
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domain/entity"
)

// DTO represents the JSON structure for tag data transfer.
type DTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" example:"go"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTOs(tags []entity.Tag) []DTO {
	dtos := make([]DTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, DTO{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	return dtos
}
