package repositories

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository   *CourseRepository
	BootcampRepository *BootcampRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		CourseRepository:   NewCourseRepository(db),
		BootcampRepository: NewBootcampRepository(db),
	}
}
