package models

import (
	"time"

	"github.com/google/uuid"
)

// Bootcamp is the organisation offering courses. Only the fields this
// service reads or maintains are modelled.
type Bootcamp struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	// AverageCost is derived from the bootcamp's courses; nil until computed
	AverageCost *int64    `json:"averageCost,omitempty" db:"average_cost"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// BootcampSummary is the subset of a bootcamp embedded in course listings
type BootcampSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
