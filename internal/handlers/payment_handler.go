package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/billing"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/cache"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	projectuc "github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/usecase/project"
)

type PaymentHandler struct {
	db       *gorm.DB
	statusUC *projectuc.SetPaymentStatus
	amountUC *projectuc.EditPaymentAmount
	linker   billing.PaymentLinker
	reports  *cache.ReportCache
}

func NewPaymentHandler(
	db *gorm.DB,
	statusUC *projectuc.SetPaymentStatus,
	amountUC *projectuc.EditPaymentAmount,
	linker billing.PaymentLinker,
	reports *cache.ReportCache,
) *PaymentHandler {
	return &PaymentHandler{
		db:       db,
		statusUC: statusUC,
		amountUC: amountUC,
		linker:   linker,
		reports:  reports,
	}
}

// --------- Requests ---------

type SetPaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Amount é ponteiro para que zero seja um valor legítimo (o binding
// "required" do gin reprova float64 zerado).
type EditPaymentAmountRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// --------- Handlers ---------

// SetStatus marca a parcela como paga ou pendente e devolve o projeto
// com o status agregado já recalculado.
func (h *PaymentHandler) SetStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	p, err := h.statusUC.Execute(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	h.reports.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) EditAmount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req EditPaymentAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	pay, err := h.amountUC.Execute(c.Request.Context(), userID, id, *req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	h.reports.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, pay)
}

// CreateLink gera um link de checkout do Mercado Pago para a parcela.
func (h *PaymentHandler) CreateLink(c *gin.Context) {
	id := c.Param("id")

	var pay models.Payment
	if err := h.db.Where("id = ?", id).First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "payment_not_found", "Parcela não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_payment", "Erro ao buscar parcela.")
		return
	}

	if pay.Status == models.PaymentStatusPaid {
		httperr.BadRequest(c, "payment_already_paid", "Parcela já quitada.")
		return
	}

	var project models.Project
	if err := h.db.Where("id = ?", pay.ProjectID).First(&project).Error; err != nil {
		httperr.Internal(c, "failed_to_get_project", "Erro ao buscar projeto.")
		return
	}

	link, err := h.linker.CreatePaymentLink(c.Request.Context(), &project, &pay)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_link": link})
}
