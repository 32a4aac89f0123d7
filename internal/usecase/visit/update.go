package visit

import (
	"context"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
)

type UpdateVisitInput struct {
	UserID  string
	VisitID string

	// Campos opcionais; nil = não alterar.
	Date    *string
	Time    *string
	Status  *string
	Summary *string

	// Projeto criado a partir desta visita.
	ProjectID *string

	Confirm bool

	Timezone string
}

type UpdateVisit struct {
	repo     domain.Repository
	detector *domain.Detector
	audit    *audit.Dispatcher
}

func NewUpdateVisit(
	repo domain.Repository,
	detector *domain.Detector,
	auditDispatcher *audit.Dispatcher,
) *UpdateVisit {
	return &UpdateVisit{
		repo:     repo,
		detector: detector,
		audit:    auditDispatcher,
	}
}

func (uc *UpdateVisit) Execute(
	ctx context.Context,
	in UpdateVisitInput,
) (*models.Visit, error) {

	v, err := uc.repo.GetVisit(ctx, in.VisitID)
	if err != nil {
		return nil, domain.ErrUnknownVisit
	}

	// Remarcação: refaz a checagem de conflito excluindo a própria
	// visita, para que ela nunca conflite consigo mesma.
	if in.Date != nil && in.Time != nil {
		at, err := timezone.ParseDateTime(in.Timezone, *in.Date, *in.Time)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}

		if at.Before(timezone.NowIn(in.Timezone)) && !in.Confirm {
			return nil, ErrPastDateNeedsConfirmation
		}

		conflict, err := uc.detector.CheckVisitConflict(ctx, v.ClientID, at, v.ID)
		if err != nil {
			return nil, err
		}
		if conflict != nil && !in.Confirm {
			return nil, &ConflictError{Conflicting: conflict}
		}

		v.Date = at
	}

	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, httperr.ErrBusiness("invalid_visit_status")
		}
		// Transições livres entre os status do vocabulário;
		// concluir não apaga a visita.
		v.Status = *in.Status
	}

	if in.Summary != nil {
		v.Summary = *in.Summary
	}

	if in.ProjectID != nil {
		if _, err := uc.repo.GetProject(ctx, *in.ProjectID); err != nil {
			return nil, domain.ErrUnknownProject
		}
		v.ProjectID = in.ProjectID
	}

	if err := uc.repo.UpdateVisit(ctx, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "visit_updated",
		Entity:   "visit",
		EntityID: &v.ID,
	})

	return v, nil
}
