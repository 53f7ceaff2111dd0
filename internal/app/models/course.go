package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Course is one course offered by a bootcamp
type Course struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	Title                string     `json:"title" db:"title" validate:"required"`
	Description          string     `json:"description" db:"description" validate:"required"`
	Weeks                string     `json:"weeks" db:"weeks" validate:"required"`
	Tuition              float64    `json:"tuition" db:"tuition"`
	MinimumSkill         SkillLevel `json:"minimumSkill" db:"minimum_skill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool       `json:"scholarshipAvailable" db:"scholarship_available"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	BootcampID           uuid.UUID  `json:"bootcampId" db:"bootcamp_id" validate:"required"`
	UserID               uuid.UUID  `json:"userId" db:"user_id" validate:"required"`

	// Populated on list/get, not persisted
	Bootcamp *BootcampSummary `json:"bootcamp,omitempty" db:"-"`
}

// CourseUpdate holds the mutable fields of a course; nil means unchanged
type CourseUpdate struct {
	Title                *string
	Description          *string
	Weeks                *string
	Tuition              *float64
	MinimumSkill         *SkillLevel
	ScholarshipAvailable *bool
}

// Apply copies the set fields onto c and reports whether tuition changed
func (u CourseUpdate) Apply(c *Course) (tuitionChanged bool) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Weeks != nil {
		c.Weeks = *u.Weeks
	}
	if u.Tuition != nil {
		tuitionChanged = *u.Tuition != c.Tuition
		c.Tuition = *u.Tuition
	}
	if u.MinimumSkill != nil {
		c.MinimumSkill = *u.MinimumSkill
	}
	if u.ScholarshipAvailable != nil {
		c.ScholarshipAvailable = *u.ScholarshipAvailable
	}
	return tuitionChanged
}

// CourseFilter narrows course listings
type CourseFilter struct {
	BootcampID *uuid.UUID
}

// TuitionAggregate is the result of grouping a bootcamp's courses
type TuitionAggregate struct {
	BootcampID uuid.UUID
	Count      int64
	// Average is only meaningful when Count > 0
	Average decimal.Decimal
}
