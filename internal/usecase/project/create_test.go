package project

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/finance"
	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type fakeRepo struct {
	clients  map[string]models.Client
	visits   map[string]*models.Visit
	projects map[string]*models.Project
	payments map[string]*models.Payment

	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:  map[string]models.Client{},
		visits:   map[string]*models.Visit{},
		projects: map[string]*models.Project{},
		payments: map[string]*models.Payment{},
	}
}

func (f *fakeRepo) GetClient(_ context.Context, id string) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return &c, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) GetVisit(_ context.Context, id string) (*models.Visit, error) {
	if v, ok := f.visits[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) CreateVisit(_ context.Context, v *models.Visit) error {
	f.visits[v.ID] = v
	return nil
}

func (f *fakeRepo) UpdateVisit(_ context.Context, v *models.Visit) error {
	f.visits[v.ID] = v
	return nil
}

func (f *fakeRepo) ListVisitsByClient(_ context.Context, clientID string) ([]models.Visit, error) {
	var out []models.Visit
	for _, v := range f.visits {
		if v.ClientID == clientID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetProject(_ context.Context, id string) (*models.Project, error) {
	if p, ok := f.projects[id]; ok {
		cp := *p
		cp.Payments = f.projectPayments(p.ID)
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) projectPayments(projectID string) []models.Payment {
	var out []models.Payment
	for _, pay := range f.payments {
		if pay.ProjectID == projectID {
			out = append(out, *pay)
		}
	}
	return out
}

func (f *fakeRepo) CreateProject(_ context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = "proj-new"
	}
	for i := range p.Payments {
		pay := &p.Payments[i]
		if pay.ID == "" {
			f.nextID++
			pay.ID = fmt.Sprintf("pay-%d", f.nextID)
		}
		pay.ProjectID = p.ID
		cp := *pay
		f.payments[pay.ID] = &cp
	}
	cp := *p
	f.projects[p.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdateProject(_ context.Context, p *models.Project) error {
	cp := *p
	f.projects[p.ID] = &cp
	for i := range p.Payments {
		pay := p.Payments[i]
		f.payments[pay.ID] = &pay
	}
	return nil
}

func (f *fakeRepo) ListProjectsByClient(_ context.Context, clientID string) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		if p.ClientID == clientID {
			cp := *p
			cp.Payments = f.projectPayments(p.ID)
			out = append(out, cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListProjects(_ context.Context) ([]models.Project, error) {
	var out []models.Project
	for _, p := range f.projects {
		cp := *p
		cp.Payments = f.projectPayments(p.ID)
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeRepo) GetPayment(_ context.Context, id string) (*models.Payment, error) {
	if p, ok := f.payments[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepo) UpdatePayment(_ context.Context, p *models.Payment) error {
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakeRepo) ListPaymentsByProject(_ context.Context, projectID string) ([]models.Payment, error) {
	return f.projectPayments(projectID), nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func noopAudit() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func newCreateUC(repo *fakeRepo) *CreateProject {
	return NewCreateProject(repo, domain.NewDetector(repo), noopAudit())
}

func TestCreateProject(t *testing.T) {
	t.Run("full payment generates single pending installment", func(t *testing.T) {
		repo := newFakeRepo()
		repo.clients["ana"] = models.Client{ID: "ana", Name: "Ana Silva"}

		p, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
			UserID:        "u1",
			ClientID:      "ana",
			Name:          "Organização do home office",
			StartDate:     "2024-07-01",
			EndDate:       "2024-07-15",
			Value:         1500,
			PaymentMethod: models.PaymentMethodFull,
		})

		require.NoError(t, err)
		require.Len(t, p.Payments, 1)
		assert.Equal(t, 1500.0, p.Payments[0].Amount)
		assert.Equal(t, models.ProjectPaymentPending, p.PaymentStatus)
	})

	t.Run("installment method splits in two summing exactly", func(t *testing.T) {
		repo := newFakeRepo()
		repo.clients["ana"] = models.Client{ID: "ana"}

		p, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
			ClientID:      "ana",
			Name:          "Closet",
			StartDate:     "2024-08-01",
			EndDate:       "2024-08-10",
			Value:         999.99,
			PaymentMethod: models.PaymentMethodInstallment,
		})

		require.NoError(t, err)
		require.Len(t, p.Payments, 2)
		assert.True(t, finance.PaymentsMatchValue(p.Payments, 999.99))
	})

	t.Run("inverted dates rejected, never swapped", func(t *testing.T) {
		repo := newFakeRepo()
		repo.clients["ana"] = models.Client{ID: "ana"}

		_, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
			ClientID:  "ana",
			StartDate: "2024-07-15",
			EndDate:   "2024-07-01",
			Value:     100,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("explicit payments must sum to value within tolerance", func(t *testing.T) {
		repo := newFakeRepo()
		repo.clients["ana"] = models.Client{ID: "ana"}

		_, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
			ClientID:  "ana",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-15",
			Value:     1000,
			Payments: []PaymentInput{
				{Amount: 600, DueDate: "2024-07-01"},
				{Amount: 300, DueDate: "2024-07-15"},
			},
		})
		assert.ErrorIs(t, err, finance.ErrPrecisionMismatch)
	})

	t.Run("overlapping ranges warn and confirm overrides", func(t *testing.T) {
		repo := newFakeRepo()
		repo.clients["ana"] = models.Client{ID: "ana"}

		uc := newCreateUC(repo)
		base := CreateProjectInput{
			ClientID:  "ana",
			Name:      "Primeiro",
			StartDate: "2024-07-01",
			EndDate:   "2024-07-15",
			Value:     100,
		}
		_, err := uc.Execute(context.Background(), base)
		require.NoError(t, err)

		// Intervalos encostando no mesmo dia contam como conflito.
		second := base
		second.Name = "Segundo"
		second.StartDate = "2024-07-15"
		second.EndDate = "2024-07-20"

		_, err = uc.Execute(context.Background(), second)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)

		second.Confirm = true
		_, err = uc.Execute(context.Background(), second)
		assert.NoError(t, err)
	})

	t.Run("links originating visit to the new project", func(t *testing.T) {
		repo := newFakeRepo()
		repo.clients["ana"] = models.Client{ID: "ana"}
		repo.visits["v1"] = &models.Visit{ID: "v1", ClientID: "ana"}

		visitID := "v1"
		p, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
			ClientID:  "ana",
			VisitID:   &visitID,
			Name:      "Cozinha",
			StartDate: "2024-09-01",
			EndDate:   "2024-09-05",
			Value:     500,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.visits["v1"].ProjectID)
		assert.Equal(t, p.ID, *repo.visits["v1"].ProjectID)
	})
}

func TestUpdateProjectValueRescalesInstallments(t *testing.T) {
	repo := newFakeRepo()
	repo.clients["ana"] = models.Client{ID: "ana"}

	created, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
		ClientID:      "ana",
		Name:          "Quarto",
		StartDate:     "2024-07-01",
		EndDate:       "2024-07-15",
		Value:         1000,
		PaymentMethod: models.PaymentMethodInstallment,
	})
	require.NoError(t, err)

	uc := NewUpdateProject(repo, domain.NewDetector(repo), noopAudit())

	newValue := 1500.0
	updated, err := uc.Execute(context.Background(), UpdateProjectInput{
		ProjectID: created.ID,
		Value:     &newValue,
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, updated.Value)
	assert.True(t, finance.PaymentsMatchValue(updated.Payments, 1500))
}

func TestSetPaymentStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.clients["ana"] = models.Client{ID: "ana"}

	created, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
		ClientID:      "ana",
		Name:          "Sala",
		StartDate:     "2024-07-01",
		EndDate:       "2024-07-15",
		Value:         1000,
		PaymentMethod: models.PaymentMethodInstallment,
	})
	require.NoError(t, err)
	require.Len(t, created.Payments, 2)

	uc := NewSetPaymentStatus(repo, noopAudit())

	t.Run("one paid installment makes project partially paid", func(t *testing.T) {
		p, err := uc.Execute(context.Background(), "u1", created.Payments[0].ID, models.PaymentStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectPaymentPartial, p.PaymentStatus)
	})

	t.Run("all paid makes project paid", func(t *testing.T) {
		p, err := uc.Execute(context.Background(), "u1", created.Payments[1].ID, models.PaymentStatusPaid)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectPaymentPaid, p.PaymentStatus)
	})

	t.Run("back to pending flips aggregate back", func(t *testing.T) {
		p, err := uc.Execute(context.Background(), "u1", created.Payments[0].ID, models.PaymentStatusPending)
		require.NoError(t, err)
		assert.Equal(t, models.ProjectPaymentPartial, p.PaymentStatus)
	})

	t.Run("unknown payment id is an error", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "u1", "pay-missing", models.PaymentStatusPaid)
		assert.ErrorIs(t, err, ErrUnknownPayment)
	})
}

func TestEditPaymentAmount(t *testing.T) {
	repo := newFakeRepo()
	repo.clients["ana"] = models.Client{ID: "ana"}

	created, err := newCreateUC(repo).Execute(context.Background(), CreateProjectInput{
		ClientID:      "ana",
		Name:          "Escritório",
		StartDate:     "2024-07-01",
		EndDate:       "2024-07-15",
		Value:         1000,
		PaymentMethod: models.PaymentMethodInstallment,
	})
	require.NoError(t, err)

	uc := NewEditPaymentAmount(repo, noopAudit())

	t.Run("breaking the invariant is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), "u1", created.Payments[0].ID, 900)
		assert.ErrorIs(t, err, finance.ErrPrecisionMismatch)
	})

	t.Run("edit keeping the sum passes", func(t *testing.T) {
		// 500/500 → 600 só fecharia se a outra fosse 400; edita
		// dentro da tolerância mantendo a soma.
		pay, err := uc.Execute(context.Background(), "u1", created.Payments[0].ID, 500.00)
		require.NoError(t, err)
		assert.Equal(t, 500.0, pay.Amount)
	})
}
