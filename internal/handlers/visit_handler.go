package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/dto"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httpresp"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/summary"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/timezone"
	visituc "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/visit"
)

type VisitHandler struct {
	db         *gorm.DB
	createUC   *visituc.CreateVisit
	updateUC   *visituc.UpdateVisit
	summarizer summary.Summarizer
}

func NewVisitHandler(
	db *gorm.DB,
	createUC *visituc.CreateVisit,
	updateUC *visituc.UpdateVisit,
	summarizer summary.Summarizer,
) *VisitHandler {
	return &VisitHandler{
		db:         db,
		createUC:   createUC,
		updateUC:   updateUC,
		summarizer: summarizer,
	}
}

// --------- Requests ---------

type CreateVisitRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Status   string `json:"status"`
	Summary  string `json:"summary"`
	Confirm  bool   `json:"confirm"`
	Timezone string `json:"timezone"`
}

type UpdateVisitRequest struct {
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Status    *string `json:"status,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	ProjectID *string `json:"project_id,omitempty"`
	Confirm   bool    `json:"confirm"`
	Timezone  string  `json:"timezone"`
}

type SummarizeVisitRequest struct {
	// Texto livre a resumir; vazio usa o relato já salvo na visita.
	Text string `json:"text"`
}

// --------- Handlers ---------

func (h *VisitHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	v, err := h.createUC.Execute(c.Request.Context(), visituc.CreateVisitInput{
		UserID:   userID,
		ClientID: req.ClientID,
		Date:     req.Date,
		Time:     req.Time,
		Status:   req.Status,
		Summary:  req.Summary,
		Confirm:  req.Confirm,
		Timezone: req.Timezone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, v)
}

func (h *VisitHandler) List(c *gin.Context) {
	q := h.db.Preload("Client").Preload("Photos")

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	// ?date=2026-09-01 filtra as visitas do dia.
	if date := c.Query("date"); date != "" {
		day, err := timezone.ParseDate(c.Query("timezone"), date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		q = q.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var visits []models.Visit
	if err := q.Order("date ASC").Find(&visits).Error; err != nil {
		httperr.Internal(c, "failed_to_list_visits", "Erro ao listar visitas.")
		return
	}

	out := make([]dto.VisitListDTO, 0, len(visits))
	for _, v := range visits {
		out = append(out, dto.VisitListDTO{
			ID:         v.ID,
			Date:       v.Date,
			Status:     v.Status,
			ClientName: v.Client.Name,
			ProjectID:  v.ProjectID,
			Summary:    v.Summary,
		})
	}

	httpresp.List(c, out)
}

func (h *VisitHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var v models.Visit
	if err := h.db.
		Preload("Client").
		Preload("Photos").
		Where("id = ?", id).
		First(&v).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "visit_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_visit"})
		return
	}

	c.JSON(http.StatusOK, v)
}

func (h *VisitHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	v, err := h.updateUC.Execute(c.Request.Context(), visituc.UpdateVisitInput{
		UserID:    userID,
		VisitID:   id,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Summary:   req.Summary,
		ProjectID: req.ProjectID,
		Confirm:   req.Confirm,
		Timezone:  req.Timezone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, v)
}

// Summarize condensa o relato da visita via IA e devolve o texto
// resumido sem persistir nada; salvar é uma decisão do cliente.
func (h *VisitHandler) Summarize(c *gin.Context) {
	id := c.Param("id")

	var v models.Visit
	if err := h.db.Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "visit_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_visit"})
		return
	}

	var req SummarizeVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		text = strings.TrimSpace(v.Summary)
	}
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing_to_summarize"})
		return
	}

	summarized, err := h.summarizer.Summarize(c.Request.Context(), text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summarized})
}
