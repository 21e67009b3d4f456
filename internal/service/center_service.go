package service

import (
	"context"
	"errors"
	"fmt"
	"mammacheck/internal/model"
	"mammacheck/internal/repository"
	"strings"
)

var ErrCenterInvalid = errors.New("center name and city are required")

const (
	defaultCenterLimit = 50
	maxCenterLimit     = 100
)

// CenterService manages the screening center directory
type CenterService struct {
	centerRepo repository.CenterRepo
}

func NewCenterService(centerRepo repository.CenterRepo) *CenterService {
	return &CenterService{centerRepo: centerRepo}
}

// List returns centers, optionally filtered by city. Limits outside
// [1, maxCenterLimit] fall back to the default.
func (s *CenterService) List(ctx context.Context, city string, limit int) ([]*model.ScreeningCenter, error) {
	if limit <= 0 || limit > maxCenterLimit {
		limit = defaultCenterLimit
	}

	centers, err := s.centerRepo.List(ctx, strings.TrimSpace(city), int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list centers: %w", err)
	}
	if centers == nil {
		centers = []*model.ScreeningCenter{}
	}
	return centers, nil
}

// Create stores a manually entered center and returns its id.
func (s *CenterService) Create(ctx context.Context, center *model.ScreeningCenter) (string, error) {
	center.Name = strings.TrimSpace(center.Name)
	center.City = strings.TrimSpace(center.City)
	if center.Name == "" || center.City == "" {
		return "", ErrCenterInvalid
	}

	id, err := s.centerRepo.Create(ctx, center)
	if err != nil {
		return "", fmt.Errorf("failed to create center: %w", err)
	}
	return id, nil
}
