package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

type AdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// PENDING USERS
// ======================================================

func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("status = ?", models.UserStatusPending).
		Order("created_at ASC").
		Find(&users).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	h.setUserStatus(c, models.UserStatusApproved, "user_approved")
}

func (h *AdminHandler) RejectUser(c *gin.Context) {
	h.setUserStatus(c, models.UserStatusRejected, "user_rejected")
}

func (h *AdminHandler) setUserStatus(c *gin.Context, status, action string) {
	adminID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var user models.User
	if err := h.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_user"})
		return
	}

	user.Status = status
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_user"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, user)
}
