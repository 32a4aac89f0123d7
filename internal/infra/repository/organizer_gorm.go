package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type OrganizerGormRepository struct {
	db *gorm.DB
}

func NewOrganizerGormRepository(db *gorm.DB) *OrganizerGormRepository {
	return &OrganizerGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *OrganizerGormRepository) GetClient(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Visit
// --------------------------------------------------

func (r *OrganizerGormRepository) GetVisit(
	ctx context.Context,
	id string,
) (*models.Visit, error) {

	var visit models.Visit
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("id = ?", id).
		First(&visit).Error; err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *OrganizerGormRepository) CreateVisit(
	ctx context.Context,
	v *models.Visit,
) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *OrganizerGormRepository) UpdateVisit(
	ctx context.Context,
	v *models.Visit,
) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *OrganizerGormRepository) ListVisitsByClient(
	ctx context.Context,
	clientID string,
) ([]models.Visit, error) {

	var visits []models.Visit
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

// --------------------------------------------------
// Project
// --------------------------------------------------

func (r *OrganizerGormRepository) GetProject(
	ctx context.Context,
	id string,
) (*models.Project, error) {

	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Preload("Photos").
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *OrganizerGormRepository) CreateProject(
	ctx context.Context,
	p *models.Project,
) error {
	// Cria projeto e parcelas na mesma transação.
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *OrganizerGormRepository) UpdateProject(
	ctx context.Context,
	p *models.Project,
) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(p).Error
}

func (r *OrganizerGormRepository) ListProjectsByClient(
	ctx context.Context,
	clientID string,
) ([]models.Project, error) {

	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("client_id = ?", clientID).
		Order("start_date ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *OrganizerGormRepository) ListProjects(
	ctx context.Context,
) ([]models.Project, error) {

	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Order("start_date ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *OrganizerGormRepository) GetPayment(
	ctx context.Context,
	id string,
) (*models.Payment, error) {

	var payment models.Payment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *OrganizerGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *OrganizerGormRepository) ListPaymentsByProject(
	ctx context.Context,
	projectID string,
) ([]models.Payment, error) {

	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("due_date ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Compile-time check
var _ domain.Repository = (*OrganizerGormRepository)(nil)
