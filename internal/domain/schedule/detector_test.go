package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type fakeRepo struct {
	clients  map[string]models.Client
	visits   []models.Visit
	projects []models.Project
}

func (f *fakeRepo) GetClient(_ context.Context, id string) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return &c, nil
	}
	return nil, ErrUnknownClient
}

func (f *fakeRepo) GetVisit(_ context.Context, id string) (*models.Visit, error) {
	for i := range f.visits {
		if f.visits[i].ID == id {
			return &f.visits[i], nil
		}
	}
	return nil, ErrUnknownVisit
}

func (f *fakeRepo) GetProject(_ context.Context, id string) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, ErrUnknownProject
}

func (f *fakeRepo) CreateVisit(_ context.Context, v *models.Visit) error {
	f.visits = append(f.visits, *v)
	return nil
}

func (f *fakeRepo) UpdateVisit(_ context.Context, v *models.Visit) error { return nil }

func (f *fakeRepo) ListVisitsByClient(_ context.Context, clientID string) ([]models.Visit, error) {
	var out []models.Visit
	for _, v := range f.visits {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateProject(_ context.Context, p *models.Project) error {
	f.projects = append(f.projects, *p)
	return nil
}

func (f *fakeRepo) UpdateProject(_ context.Context, p *models.Project) error { return nil }

func (f *fakeRepo) ListProjectsByClient(_ context.Context, clientID string) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListProjects(_ context.Context) ([]models.Project, error) {
	return f.projects, nil
}

func (f *fakeRepo) GetPayment(_ context.Context, id string) (*models.Payment, error) {
	return nil, ErrUnknownProject
}

func (f *fakeRepo) UpdatePayment(_ context.Context, p *models.Payment) error { return nil }

func (f *fakeRepo) ListPaymentsByProject(_ context.Context, projectID string) ([]models.Payment, error) {
	return nil, nil
}

var _ Repository = (*fakeRepo)(nil)

func TestDetectorCheckVisitConflict(t *testing.T) {
	at := time.Date(2024, 7, 2, 10, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		clients: map[string]models.Client{
			"ana": {ID: "ana", Name: "Ana Silva"},
		},
		visits: []models.Visit{
			{ID: "v1", ClientID: "ana", Date: at},
		},
	}
	det := NewDetector(repo)

	t.Run("returns the clashing visit", func(t *testing.T) {
		got, err := det.CheckVisitConflict(context.Background(), "ana", at, "")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "v1", got.ID)
	})

	t.Run("excluding the clashing visit returns nil", func(t *testing.T) {
		got, err := det.CheckVisitConflict(context.Background(), "ana", at, "v1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown client is an error, not a free slot", func(t *testing.T) {
		_, err := det.CheckVisitConflict(context.Background(), "ninguem", at, "")
		assert.ErrorIs(t, err, ErrUnknownClient)
	})

	t.Run("unknown exclude id is an error", func(t *testing.T) {
		_, err := det.CheckVisitConflict(context.Background(), "ana", at, "v-missing")
		assert.ErrorIs(t, err, ErrUnknownVisit)
	})
}

func TestDetectorCheckProjectConflict(t *testing.T) {
	repo := &fakeRepo{
		clients: map[string]models.Client{
			"ana": {ID: "ana", Name: "Ana Silva"},
		},
		projects: []models.Project{
			{
				ID:        "p1",
				ClientID:  "ana",
				StartDate: day(2024, 7, 1),
				EndDate:   day(2024, 7, 15),
			},
		},
	}
	det := NewDetector(repo)

	t.Run("overlapping range conflicts", func(t *testing.T) {
		got, err := det.CheckProjectConflict(
			context.Background(),
			"ana",
			DateRange{Start: day(2024, 7, 10), End: day(2024, 7, 20)},
			"",
		)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "p1", got.ID)
	})

	t.Run("inverted candidate range is rejected", func(t *testing.T) {
		_, err := det.CheckProjectConflict(
			context.Background(),
			"ana",
			DateRange{Start: day(2024, 7, 20), End: day(2024, 7, 10)},
			"",
		)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("unknown exclude project id is an error", func(t *testing.T) {
		_, err := det.CheckProjectConflict(
			context.Background(),
			"ana",
			DateRange{Start: day(2024, 8, 1), End: day(2024, 8, 2)},
			"p-missing",
		)
		assert.ErrorIs(t, err, ErrUnknownProject)
	})
}
