package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CourseEventType names a course lifecycle transition
type CourseEventType string

const (
	CourseCreated CourseEventType = "course.created"
	CourseUpdated CourseEventType = "course.updated"
	CourseDeleted CourseEventType = "course.deleted"
)

// CourseEvent is published after the store mutation succeeded
type CourseEvent struct {
	Type     CourseEventType
	CourseID uuid.UUID
	// BootcampID is captured before removal for CourseDeleted
	BootcampID     uuid.UUID
	TuitionChanged bool
}

// CourseHook reacts to a course event
type CourseHook func(ctx context.Context, event CourseEvent)

// CourseEvents is an ordered list of hooks run synchronously on Publish
type CourseEvents struct {
	mu    sync.RWMutex
	hooks map[CourseEventType][]CourseHook
	log   zerolog.Logger
}

// NewCourseEvents creates an empty hook list
func NewCourseEvents(log zerolog.Logger) *CourseEvents {
	return &CourseEvents{
		hooks: make(map[CourseEventType][]CourseHook),
		log:   log,
	}
}

// Subscribe registers hook for the given event types
func (e *CourseEvents) Subscribe(hook CourseHook, types ...CourseEventType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, t := range types {
		e.hooks[t] = append(e.hooks[t], hook)
	}
}

// Publish runs the hooks for event.Type in registration order. A panicking
// hook is logged and the remaining hooks still run.
func (e *CourseEvents) Publish(ctx context.Context, event CourseEvent) {
	if e == nil {
		return
	}

	e.mu.RLock()
	hooks := append([]CourseHook(nil), e.hooks[event.Type]...)
	e.mu.RUnlock()

	for _, hook := range hooks {
		e.run(ctx, hook, event)
	}
}

func (e *CourseEvents) run(ctx context.Context, hook CourseHook, event CourseEvent) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().
				Interface("panic", r).
				Str("event", string(event.Type)).
				Str("courseID", event.CourseID.String()).
				Msg("Course hook panicked")
		}
	}()
	hook(ctx, event)
}
