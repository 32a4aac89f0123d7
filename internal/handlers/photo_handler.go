package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/storage/photos"

	"github.com/google/uuid"
)

type PhotoHandler struct {
	db    *gorm.DB
	store *photos.Store
	audit *audit.Dispatcher
}

func NewPhotoHandler(db *gorm.DB, store *photos.Store, auditDispatcher *audit.Dispatcher) *PhotoHandler {
	return &PhotoHandler{db: db, store: store, audit: auditDispatcher}
}

// --------- Requests ---------

type AddPhotoRequest struct {
	// Imagem como data URL ("data:image/...;base64,...").
	Data string `json:"data" binding:"required"`

	Description string `json:"description" binding:"required"`
	Type        string `json:"type"`

	// Apenas para fotos de projeto: "antes" ou "depois".
	Side string `json:"side"`
}

// --------- Handlers ---------

// AddToVisit anexa uma foto de documentação a uma visita.
func (h *PhotoHandler) AddToVisit(c *gin.Context) {
	visitID := c.Param("id")

	var count int64
	h.db.Model(&models.Visit{}).Where("id = ?", visitID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "visit_not_found"})
		return
	}

	h.addPhoto(c, &visitID, nil)
}

// AddToProject anexa uma foto ao lado antes/depois de um projeto.
func (h *PhotoHandler) AddToProject(c *gin.Context) {
	projectID := c.Param("id")

	var count int64
	h.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count)
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project_not_found"})
		return
	}

	h.addPhoto(c, nil, &projectID)
}

func (h *PhotoHandler) addPhoto(c *gin.Context, visitID, projectID *string) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if len(strings.TrimSpace(req.Description)) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description_too_short"})
		return
	}

	photoType := req.Type
	if photoType == "" {
		photoType = models.PhotoTypeUpload
	}
	if photoType != models.PhotoTypeCamera && photoType != models.PhotoTypeUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_photo_type"})
		return
	}

	side := req.Side
	if projectID != nil {
		if side != models.PhotoSideBefore && side != models.PhotoSideAfter {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_photo_side"})
			return
		}
	} else {
		side = ""
	}

	photoID := uuid.NewString()

	url, err := h.store.Save(c.Request.Context(), photoID, req.Data)
	if err != nil {
		respondError(c, err)
		return
	}

	photo := models.Photo{
		ID:          photoID,
		VisitID:     visitID,
		ProjectID:   projectID,
		Side:        side,
		URL:         url,
		Description: strings.TrimSpace(req.Description),
		Type:        photoType,
	}

	if err := h.db.Create(&photo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_photo"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "photo_added",
		Entity:   "photo",
		EntityID: &photo.ID,
	})

	c.JSON(http.StatusCreated, photo)
}
