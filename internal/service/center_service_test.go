package service

import (
	"context"
	"errors"
	"fmt"
	"mammacheck/internal/model"
	"sync"
	"testing"
)

type fakeCenterRepo struct {
	mu        sync.Mutex
	centers   []*model.ScreeningCenter
	upserts   []*model.ScreeningCenter
	lastLimit int64
	nextID    int
}

func (f *fakeCenterRepo) Create(_ context.Context, center *model.ScreeningCenter) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	center.ID = fmt.Sprintf("center-%d", f.nextID)
	f.centers = append(f.centers, center)
	return center.ID, nil
}

func (f *fakeCenterRepo) GetByID(_ context.Context, id string) (*model.ScreeningCenter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.centers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCenterRepo) List(_ context.Context, city string, limit int64) ([]*model.ScreeningCenter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	var out []*model.ScreeningCenter
	for _, c := range f.centers {
		if city == "" || c.City == city {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCenterRepo) UpsertBySourceID(_ context.Context, center *model.ScreeningCenter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, center)
	return nil
}

func TestCenterListClampsLimit(t *testing.T) {
	t.Parallel()

	repo := &fakeCenterRepo{}
	svc := NewCenterService(repo)
	ctx := context.Background()

	cases := []struct {
		limit int
		want  int64
	}{
		{0, 50},
		{-3, 50},
		{101, 50},
		{10, 10},
		{100, 100},
	}
	for _, tc := range cases {
		if _, err := svc.List(ctx, "", tc.limit); err != nil {
			t.Fatalf("List(%d): %v", tc.limit, err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("List(%d): repo limit got %d, want %d", tc.limit, repo.lastLimit, tc.want)
		}
	}
}

func TestCenterListNeverReturnsNil(t *testing.T) {
	t.Parallel()

	svc := NewCenterService(&fakeCenterRepo{})

	centers, err := svc.List(context.Background(), "Nowhere", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if centers == nil {
		t.Fatal("got nil slice, want empty")
	}
}

func TestCenterCreateRequiresNameAndCity(t *testing.T) {
	t.Parallel()

	svc := NewCenterService(&fakeCenterRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.ScreeningCenter{Name: "  ", City: "Rabat"})
	if !errors.Is(err, ErrCenterInvalid) {
		t.Fatalf("got %v, want ErrCenterInvalid", err)
	}
	_, err = svc.Create(ctx, &model.ScreeningCenter{Name: "Centre Lalla Salma", City: ""})
	if !errors.Is(err, ErrCenterInvalid) {
		t.Fatalf("got %v, want ErrCenterInvalid", err)
	}

	id, err := svc.Create(ctx, &model.ScreeningCenter{Name: "Centre Lalla Salma", City: "Rabat"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("got empty id")
	}
}
