package visit

import (
	"context"
	"fmt"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
)

// ConflictError sinaliza que o horário candidato colide com outra
// visita do mesmo cliente. É um aviso: o chamador pode repetir a
// operação com Confirm=true.
type ConflictError struct {
	Conflicting *models.Visit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("visit_conflict: %s", e.Conflicting.ID)
}

var ErrPastDateNeedsConfirmation = httperr.ErrBusiness("past_date_confirmation_required")

// ======================================================
// INPUT
// ======================================================

type CreateVisitInput struct {
	UserID   string
	ClientID string

	Date string
	Time string

	Status  string
	Summary string

	// Confirm aceita os avisos (conflito de horário, data no
	// passado) e prossegue mesmo assim.
	Confirm bool

	Timezone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateVisit struct {
	repo     domain.Repository
	detector *domain.Detector
	audit    *audit.Dispatcher
}

func NewCreateVisit(
	repo domain.Repository,
	detector *domain.Detector,
	auditDispatcher *audit.Dispatcher,
) *CreateVisit {
	return &CreateVisit{
		repo:     repo,
		detector: detector,
		audit:    auditDispatcher,
	}
}

func (uc *CreateVisit) Execute(
	ctx context.Context,
	in CreateVisitInput,
) (*models.Visit, error) {

	at, err := timezone.ParseDateTime(in.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Data no passado exige confirmação explícita (registro
	// retroativo é permitido, mas nunca por engano).
	if at.Before(timezone.NowIn(in.Timezone)) && !in.Confirm {
		return nil, ErrPastDateNeedsConfirmation
	}

	conflict, err := uc.detector.CheckVisitConflict(ctx, in.ClientID, at, "")
	if err != nil {
		return nil, err
	}
	if conflict != nil && !in.Confirm {
		return nil, &ConflictError{Conflicting: conflict}
	}

	status := in.Status
	if status == "" {
		status = models.VisitStatusPending
	}
	if !isValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_visit_status")
	}

	v := &models.Visit{
		ClientID: in.ClientID,
		Date:     at,
		Status:   status,
		Summary:  in.Summary,
	}

	if err := uc.repo.CreateVisit(ctx, v); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "visit_created",
		Entity:   "visit",
		EntityID: &v.ID,
	})

	return v, nil
}

func isValidStatus(status string) bool {
	switch status {
	case models.VisitStatusPending,
		models.VisitStatusCompleted,
		models.VisitStatusCancelled,
		models.VisitStatusQuote:
		return true
	}
	return false
}
