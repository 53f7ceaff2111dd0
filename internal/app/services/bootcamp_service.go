package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/models"
)

// bootcampServiceImpl implements BootcampService
type bootcampServiceImpl struct {
	bootcampRepo BootcampStore
}

// NewBootcampService creates a new BootcampService
func NewBootcampService(bootcampRepo BootcampStore) BootcampService {
	return &bootcampServiceImpl{bootcampRepo: bootcampRepo}
}

// GetBootcamps lists all bootcamps with their average cost
func (s *bootcampServiceImpl) GetBootcamps(ctx context.Context) ([]*models.Bootcamp, error) {
	bootcamps, err := s.bootcampRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting bootcamps: %w", err)
	}
	return bootcamps, nil
}

// GetBootcamp retrieves a single bootcamp
func (s *bootcampServiceImpl) GetBootcamp(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	bootcamp, err := s.bootcampRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting bootcamp: %w", err)
	}
	return bootcamp, nil
}
