package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/cache"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/finance"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httpresp"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
	projectuc "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/project"
)

type ProjectHandler struct {
	db       *gorm.DB
	createUC *projectuc.CreateProject
	updateUC *projectuc.UpdateProject
	reports  *cache.ReportCache
}

func NewProjectHandler(
	db *gorm.DB,
	createUC *projectuc.CreateProject,
	updateUC *projectuc.UpdateProject,
	reports *cache.ReportCache,
) *ProjectHandler {
	return &ProjectHandler{
		db:       db,
		createUC: createUC,
		updateUC: updateUC,
		reports:  reports,
	}
}

// --------- Requests ---------

type ProjectPaymentRequest struct {
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description"`
}

type CreateProjectRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	VisitID  *string `json:"visit_id,omitempty"`

	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	Value         float64 `json:"value"`
	PaymentMethod string  `json:"payment_method"`

	Payments []ProjectPaymentRequest `json:"payments"`

	Confirm  bool   `json:"confirm"`
	Timezone string `json:"timezone"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`

	Value *float64 `json:"value,omitempty"`

	Confirm  bool   `json:"confirm"`
	Timezone string `json:"timezone"`
}

// --------- Handlers ---------

func (h *ProjectHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	payments := make([]projectuc.PaymentInput, 0, len(req.Payments))
	for _, p := range req.Payments {
		payments = append(payments, projectuc.PaymentInput{
			Amount:      p.Amount,
			Status:      p.Status,
			DueDate:     p.DueDate,
			Description: p.Description,
		})
	}

	p, err := h.createUC.Execute(c.Request.Context(), projectuc.CreateProjectInput{
		UserID:        userID,
		ClientID:      req.ClientID,
		VisitID:       req.VisitID,
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Value:         req.Value,
		PaymentMethod: req.PaymentMethod,
		Payments:      payments,
		Confirm:       req.Confirm,
		Timezone:      req.Timezone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.reports.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) List(c *gin.Context) {
	q := h.db.Preload("Client").Preload("Payments")

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if status := c.Query("payment_status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	var projects []models.Project
	if err := q.Order("start_date DESC").Find(&projects).Error; err != nil {
		httperr.Internal(c, "failed_to_list_projects", "Erro ao listar projetos.")
		return
	}

	today := timezone.StartOfDay(timezone.Now())
	httpresp.List(c, toProjectList(projects, today))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var p models.Project
	if err := h.db.
		Preload("Client").
		Preload("Payments").
		Preload("Photos").
		Where("id = ?", id).
		First(&p).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": p,
		"status":  finance.ExecutionStatusOf(p, timezone.StartOfDay(timezone.Now())),
	})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), projectuc.UpdateProjectInput{
		UserID:      userID,
		ProjectID:   id,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Value:       req.Value,
		Confirm:     req.Confirm,
		Timezone:    req.Timezone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.reports.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, p)
}
