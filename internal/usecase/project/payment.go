package project

import (
	"context"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/finance"
	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

var ErrUnknownPayment = httperr.ErrBusiness("unknown_payment")

// SetPaymentStatus marca uma parcela como paga ou pendente e
// recalcula o status agregado de pagamento do projeto.
type SetPaymentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetPaymentStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SetPaymentStatus {
	return &SetPaymentStatus{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *SetPaymentStatus) Execute(
	ctx context.Context,
	userID string,
	paymentID string,
	status string,
) (*models.Project, error) {

	if status != models.PaymentStatusPaid && status != models.PaymentStatusPending {
		return nil, httperr.ErrBusiness("invalid_payment_status")
	}

	pay, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, ErrUnknownPayment
	}

	pay.Status = status
	if err := uc.repo.UpdatePayment(ctx, pay); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetProject(ctx, pay.ProjectID)
	if err != nil {
		return nil, domain.ErrUnknownProject
	}

	p.PaymentStatus = finance.PaymentStatusOf(p.Payments)
	if err := uc.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	action := "payment_marked_pending"
	if status == models.PaymentStatusPaid {
		action = "payment_marked_paid"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "payment",
		EntityID: &pay.ID,
	})

	return p, nil
}

// EditPaymentAmount altera o valor de uma parcela diretamente. A
// invariante soma == valor do projeto continua valendo: a mutação é
// rejeitada quando a nova soma foge da tolerância, nunca corrigida
// em silêncio.
type EditPaymentAmount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditPaymentAmount(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *EditPaymentAmount {
	return &EditPaymentAmount{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *EditPaymentAmount) Execute(
	ctx context.Context,
	userID string,
	paymentID string,
	amount float64,
) (*models.Payment, error) {

	if amount < 0 {
		return nil, finance.ErrNegativeValue
	}

	pay, err := uc.repo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, ErrUnknownPayment
	}

	siblings, err := uc.repo.ListPaymentsByProject(ctx, pay.ProjectID)
	if err != nil {
		return nil, err
	}

	proposed := make([]models.Payment, len(siblings))
	copy(proposed, siblings)
	for i := range proposed {
		if proposed[i].ID == pay.ID {
			proposed[i].Amount = amount
		}
	}

	p, err := uc.repo.GetProject(ctx, pay.ProjectID)
	if err != nil {
		return nil, domain.ErrUnknownProject
	}

	if !finance.PaymentsMatchValue(proposed, p.Value) {
		return nil, finance.ErrPrecisionMismatch
	}

	pay.Amount = amount
	if err := uc.repo.UpdatePayment(ctx, pay); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_amount_edited",
		Entity:   "payment",
		EntityID: &pay.ID,
	})

	return pay, nil
}
