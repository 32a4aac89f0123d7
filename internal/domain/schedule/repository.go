package schedule

import (
	"context"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	// -------- Visit --------
	GetVisit(
		ctx context.Context,
		id string,
	) (*models.Visit, error)

	CreateVisit(
		ctx context.Context,
		v *models.Visit,
	) error

	UpdateVisit(
		ctx context.Context,
		v *models.Visit,
	) error

	ListVisitsByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Visit, error)

	// -------- Project --------
	GetProject(
		ctx context.Context,
		id string,
	) (*models.Project, error)

	CreateProject(
		ctx context.Context,
		p *models.Project,
	) error

	UpdateProject(
		ctx context.Context,
		p *models.Project,
	) error

	ListProjectsByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Project, error)

	ListProjects(
		ctx context.Context,
	) ([]models.Project, error)

	// -------- Payment --------
	GetPayment(
		ctx context.Context,
		id string,
	) (*models.Payment, error)

	UpdatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	ListPaymentsByProject(
		ctx context.Context,
		projectID string,
	) ([]models.Payment, error)
}
