package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type MasterDataHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMasterDataHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *MasterDataHandler {
	return &MasterDataHandler{db: db, audit: auditDispatcher}
}

type UpdateMasterDataRequest struct {
	PaymentStatuses []string `json:"payment_statuses"`
	VisitStatuses   []string `json:"visit_statuses"`
	PhotoTypes      []string `json:"photo_types"`
}

// Get devolve os vocabulários usados pelos formulários. Qualquer
// usuário autenticado pode ler.
func (h *MasterDataHandler) Get(c *gin.Context) {
	var md models.MasterData
	if err := h.db.Where("id = ?", 1).First(&md).Error; err != nil {
		httperr.Internal(c, "failed_to_get_master_data", "Erro ao buscar configurações.")
		return
	}

	c.JSON(http.StatusOK, md)
}

// Update substitui os vocabulários. Rota de admin; campo ausente
// mantém o vocabulário atual, e lista presente porém vazia é rejeitada
// para não quebrar os formulários.
func (h *MasterDataHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req UpdateMasterDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var md models.MasterData
	if err := h.db.Where("id = ?", 1).First(&md).Error; err != nil {
		httperr.Internal(c, "failed_to_get_master_data", "Erro ao buscar configurações.")
		return
	}

	if err := applyMasterDataUpdate(&md, req); err != nil {
		httperr.BadRequest(c, "empty_vocabulary", "Vocabulário não pode ficar vazio.")
		return
	}

	if err := h.db.Save(&md).Error; err != nil {
		httperr.Internal(c, "failed_to_update_master_data", "Erro ao salvar configurações.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "master_data_updated",
		Entity: "master_data",
	})

	c.JSON(http.StatusOK, md)
}

// applyMasterDataUpdate distingue campo ausente (nil, mantém) de lista
// explicitamente vazia (erro).
func applyMasterDataUpdate(md *models.MasterData, req UpdateMasterDataRequest) error {
	if req.PaymentStatuses != nil {
		if len(req.PaymentStatuses) == 0 {
			return httperr.ErrBusiness("empty_vocabulary")
		}
		md.PaymentStatuses = req.PaymentStatuses
	}
	if req.VisitStatuses != nil {
		if len(req.VisitStatuses) == 0 {
			return httperr.ErrBusiness("empty_vocabulary")
		}
		md.VisitStatuses = req.VisitStatuses
	}
	if req.PhotoTypes != nil {
		if len(req.PhotoTypes) == 0 {
			return httperr.ErrBusiness("empty_vocabulary")
		}
		md.PhotoTypes = req.PhotoTypes
	}
	return nil
}
