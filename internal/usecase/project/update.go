package project

import (
	"context"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/finance"
	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
)

type UpdateProjectInput struct {
	UserID    string
	ProjectID string

	Name        *string
	Description *string

	StartDate *string
	EndDate   *string

	// Novo valor total: reescala as parcelas proporcionalmente.
	Value *float64

	Confirm bool

	Timezone string
}

type UpdateProject struct {
	repo     domain.Repository
	detector *domain.Detector
	audit    *audit.Dispatcher
}

func NewUpdateProject(
	repo domain.Repository,
	detector *domain.Detector,
	auditDispatcher *audit.Dispatcher,
) *UpdateProject {
	return &UpdateProject{
		repo:     repo,
		detector: detector,
		audit:    auditDispatcher,
	}
}

func (uc *UpdateProject) Execute(
	ctx context.Context,
	in UpdateProjectInput,
) (*models.Project, error) {

	p, err := uc.repo.GetProject(ctx, in.ProjectID)
	if err != nil {
		return nil, domain.ErrUnknownProject
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}

	if in.StartDate != nil || in.EndDate != nil {
		start := p.StartDate
		end := p.EndDate

		if in.StartDate != nil {
			start, err = timezone.ParseDate(in.Timezone, *in.StartDate)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_start_date")
			}
		}
		if in.EndDate != nil {
			end, err = timezone.ParseDate(in.Timezone, *in.EndDate)
			if err != nil {
				return nil, httperr.ErrBusiness("invalid_end_date")
			}
		}

		candidate, err := domain.NewDateRange(start, end)
		if err != nil {
			return nil, err
		}

		// Exclui o próprio projeto da comparação.
		conflict, err := uc.detector.CheckProjectConflict(ctx, p.ClientID, candidate, p.ID)
		if err != nil {
			return nil, err
		}
		if conflict != nil && !in.Confirm {
			return nil, &ConflictError{Conflicting: conflict}
		}

		p.StartDate = start
		p.EndDate = end
	}

	if in.Value != nil {
		if err := finance.RescaleInstallments(p.Payments, *in.Value); err != nil {
			return nil, err
		}
		p.Value = *in.Value
	}

	p.PaymentStatus = finance.PaymentStatusOf(p.Payments)

	if err := uc.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "project_updated",
		Entity:   "project",
		EntityID: &p.ID,
	})

	return p, nil
}
