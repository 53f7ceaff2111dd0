package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/models"
)

// BootcampSummary is the bootcamp data embedded in a course
type BootcampSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" example:"Devworks Bootcamp"`
	Description string    `json:"description" example:"Full stack web development"`
}

// BootcampResponse is the public representation of a bootcamp
type BootcampResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AverageCost *int64    `json:"averageCost" example:"7650"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromBootcamp converts a model.Bootcamp to a BootcampResponse
func FromBootcamp(b *models.Bootcamp) BootcampResponse {
	if b == nil {
		return BootcampResponse{}
	}
	return BootcampResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		AverageCost: b.AverageCost,
		CreatedAt:   b.CreatedAt,
	}
}

// FromBootcamps converts a slice of bootcamps, never returning nil
func FromBootcamps(bootcamps []*models.Bootcamp) []BootcampResponse {
	out := make([]BootcampResponse, 0, len(bootcamps))
	for _, b := range bootcamps {
		out = append(out, FromBootcamp(b))
	}
	return out
}
