package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httpresp"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve a trilha de auditoria, mais recente primeiro. Rota de
// admin; filtros opcionais por entidade e usuário.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			httperr.BadRequest(c, "invalid_limit", "Limite inválido (1 a 1000).")
			return
		}
		limit = parsed
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.List(c, logs)
}
