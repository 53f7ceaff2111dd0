package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/models"
)

// CreateCourseRequest is the body of POST /courses and POST /bootcamps/{bootcampId}/courses
type CreateCourseRequest struct {
	Title                string   `json:"title" binding:"required" example:"Front End Web Development"`
	Description          string   `json:"description" binding:"required" example:"HTML, CSS and JavaScript from scratch"`
	Weeks                string   `json:"weeks" binding:"required" example:"8"`
	Tuition              *float64 `json:"tuition" binding:"required" example:"8000"`
	MinimumSkill         string   `json:"minimumSkill" binding:"required,oneof=beginner intermediate advanced" example:"beginner"`
	ScholarshipAvailable bool     `json:"scholarshipAvailable" example:"true"`
	// BootcampID is ignored on the nested route, where the path wins
	BootcampID string `json:"bootcamp" binding:"omitempty,uuid" example:"0b6f0c3e-8a51-4c1a-9d8e-3f2b7c5a1e90"`
}

// ToModel converts the request into a course owned by userID
func (r CreateCourseRequest) ToModel(bootcampID, userID uuid.UUID) *models.Course {
	course := &models.Course{
		Title:                r.Title,
		Description:          r.Description,
		Weeks:                r.Weeks,
		MinimumSkill:         models.SkillLevel(r.MinimumSkill),
		ScholarshipAvailable: r.ScholarshipAvailable,
		BootcampID:           bootcampID,
		UserID:               userID,
	}
	if r.Tuition != nil {
		course.Tuition = *r.Tuition
	}
	return course
}

// UpdateCourseRequest is the body of PUT /courses/{id}; omitted fields are unchanged
type UpdateCourseRequest struct {
	Title                *string  `json:"title" binding:"omitempty,min=1"`
	Description          *string  `json:"description" binding:"omitempty,min=1"`
	Weeks                *string  `json:"weeks" binding:"omitempty,min=1"`
	Tuition              *float64 `json:"tuition"`
	MinimumSkill         *string  `json:"minimumSkill" binding:"omitempty,oneof=beginner intermediate advanced"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

// ToModel converts the request into a partial course update
func (r UpdateCourseRequest) ToModel() models.CourseUpdate {
	update := models.CourseUpdate{
		Title:                r.Title,
		Description:          r.Description,
		Weeks:                r.Weeks,
		Tuition:              r.Tuition,
		ScholarshipAvailable: r.ScholarshipAvailable,
	}
	if r.MinimumSkill != nil {
		skill := models.SkillLevel(*r.MinimumSkill)
		update.MinimumSkill = &skill
	}
	return update
}

// CourseResponse is the public representation of a course
type CourseResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Weeks                string           `json:"weeks"`
	Tuition              float64          `json:"tuition"`
	MinimumSkill         string           `json:"minimumSkill"`
	ScholarshipAvailable bool             `json:"scholarshipAvailable"`
	CreatedAt            time.Time        `json:"createdAt"`
	BootcampID           uuid.UUID        `json:"bootcampId"`
	Bootcamp             *BootcampSummary `json:"bootcamp,omitempty"`
	UserID               uuid.UUID        `json:"user"`
}

// FromCourse converts a model.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}

	resp := CourseResponse{
		ID:                   course.ID,
		Title:                course.Title,
		Description:          course.Description,
		Weeks:                course.Weeks,
		Tuition:              course.Tuition,
		MinimumSkill:         string(course.MinimumSkill),
		ScholarshipAvailable: course.ScholarshipAvailable,
		CreatedAt:            course.CreatedAt,
		BootcampID:           course.BootcampID,
		UserID:               course.UserID,
	}

	if course.Bootcamp != nil {
		resp.Bootcamp = &BootcampSummary{
			ID:          course.Bootcamp.ID,
			Name:        course.Bootcamp.Name,
			Description: course.Bootcamp.Description,
		}
	}

	return resp
}

// FromCourses converts a slice of courses, never returning nil
func FromCourses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourse(c))
	}
	return out
}
