package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mammacheck/internal/model"
	"mammacheck/internal/repository"
)

var ErrDirectoryNotConfigured = errors.New("directory API access is not configured")

// DirectorySyncService imports screening centers from the facility registry
type DirectorySyncService struct {
	client     *DirectoryClient
	centerRepo repository.CenterRepo
}

func NewDirectorySyncService(client *DirectoryClient, centerRepo repository.CenterRepo) *DirectorySyncService {
	return &DirectorySyncService{
		client:     client,
		centerRepo: centerRepo,
	}
}

// SyncCenters walks every registry page and upserts each facility by its
// registry id, so repeated syncs update in place instead of duplicating.
// Returns the number of centers written.
func (s *DirectorySyncService) SyncCenters(ctx context.Context) (int, error) {
	if !s.client.IsConfigured() {
		return 0, ErrDirectoryNotConfigured
	}

	total := 0
	page := 1
	for page > 0 {
		result, err := s.client.ListFacilities(ctx, page)
		if err != nil {
			return total, fmt.Errorf("failed to fetch facility page %d: %w", page, err)
		}

		for _, f := range result.Facilities {
			if f.ID == "" || f.Name == "" {
				continue
			}
			center := &model.ScreeningCenter{
				SourceID:  f.ID,
				Name:      f.Name,
				City:      f.City,
				Address:   f.Address,
				Phone:     f.Phone,
				Latitude:  f.Lat,
				Longitude: f.Lng,
			}
			if err := s.centerRepo.UpsertBySourceID(ctx, center); err != nil {
				return total, fmt.Errorf("failed to store facility %s: %w", f.ID, err)
			}
			total++
		}

		page = result.NextPage
	}

	log.Printf("Directory sync complete: %d centers", total)
	return total, nil
}
