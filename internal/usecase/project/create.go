package project

import (
	"context"
	"fmt"
	"time"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/finance"
	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
)

// ConflictError sinaliza sobreposição de datas com outro projeto do
// mesmo cliente. Aviso confirmável, não bloqueio.
type ConflictError struct {
	Conflicting *models.Project
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("project_conflict: %s", e.Conflicting.ID)
}

// ======================================================
// INPUT
// ======================================================

type PaymentInput struct {
	Amount      float64
	Status      string
	DueDate     string
	Description string
}

type CreateProjectInput struct {
	UserID   string
	ClientID string
	VisitID  *string

	Name        string
	Description string

	StartDate string
	EndDate   string

	Value         float64
	PaymentMethod string

	// Parcelas explícitas; vazio gera o parcelamento padrão.
	Payments []PaymentInput

	Confirm bool

	Timezone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateProject struct {
	repo     domain.Repository
	detector *domain.Detector
	audit    *audit.Dispatcher
}

func NewCreateProject(
	repo domain.Repository,
	detector *domain.Detector,
	auditDispatcher *audit.Dispatcher,
) *CreateProject {
	return &CreateProject{
		repo:     repo,
		detector: detector,
		audit:    auditDispatcher,
	}
}

func (uc *CreateProject) Execute(
	ctx context.Context,
	in CreateProjectInput,
) (*models.Project, error) {

	start, err := timezone.ParseDate(in.Timezone, in.StartDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start_date")
	}
	end, err := timezone.ParseDate(in.Timezone, in.EndDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_end_date")
	}

	candidate, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	if in.Value < 0 {
		return nil, finance.ErrNegativeValue
	}

	if in.VisitID != nil {
		if _, err := uc.repo.GetVisit(ctx, *in.VisitID); err != nil {
			return nil, domain.ErrUnknownVisit
		}
	}

	conflict, err := uc.detector.CheckProjectConflict(ctx, in.ClientID, candidate, "")
	if err != nil {
		return nil, err
	}
	if conflict != nil && !in.Confirm {
		return nil, &ConflictError{Conflicting: conflict}
	}

	payments, err := uc.buildPayments(in, start, end)
	if err != nil {
		return nil, err
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentMethodFull
	}

	p := &models.Project{
		ClientID:      in.ClientID,
		VisitID:       in.VisitID,
		Name:          in.Name,
		Description:   in.Description,
		StartDate:     start,
		EndDate:       end,
		Value:         in.Value,
		PaymentMethod: method,
		PaymentStatus: finance.PaymentStatusOf(payments),
		Payments:      payments,
	}

	if err := uc.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	// Vincula a visita de origem ao projeto recém-criado.
	if in.VisitID != nil {
		if v, err := uc.repo.GetVisit(ctx, *in.VisitID); err == nil {
			v.ProjectID = &p.ID
			if err := uc.repo.UpdateVisit(ctx, v); err != nil {
				return nil, err
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "project_created",
		Entity:   "project",
		EntityID: &p.ID,
	})

	return p, nil
}

// buildPayments usa as parcelas explícitas quando informadas (com a
// invariante verificada) ou gera o parcelamento padrão da forma de
// pagamento.
func (uc *CreateProject) buildPayments(
	in CreateProjectInput,
	start, end time.Time,
) ([]models.Payment, error) {

	if len(in.Payments) == 0 {
		method := in.PaymentMethod
		if method == "" {
			method = models.PaymentMethodFull
		}
		return finance.SplitInstallments(in.Value, method, start, end)
	}

	payments := make([]models.Payment, 0, len(in.Payments))
	for _, pi := range in.Payments {
		if pi.Amount < 0 {
			return nil, finance.ErrNegativeValue
		}

		status := pi.Status
		if status == "" {
			status = models.PaymentStatusPending
		}
		if status != models.PaymentStatusPending && status != models.PaymentStatusPaid {
			return nil, httperr.ErrBusiness("invalid_payment_status")
		}

		due := start
		if pi.DueDate != "" {
			parsed, err := timezone.ParseDate(in.Timezone, pi.DueDate)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_due_date")
			}
			due = parsed
		}

		payments = append(payments, models.Payment{
			Amount:      pi.Amount,
			Status:      status,
			DueDate:     due,
			Description: pi.Description,
		})
	}

	// Mutação rejeitada, nunca corrigida em silêncio.
	if !finance.PaymentsMatchValue(payments, in.Value) {
		return nil, finance.ErrPrecisionMismatch
	}

	return payments, nil
}
