package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/audit"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/middleware"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/validators"
)

type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Preferences string `json:"preferences"`
	CPF         string `json:"cpf"`

	BirthdayDay   int `json:"birthday_day" binding:"omitempty,min=1,max=31"`
	BirthdayMonth int `json:"birthday_month" binding:"omitempty,min=1,max=12"`
}

type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	Preferences *string `json:"preferences,omitempty"`
	CPF         *string `json:"cpf,omitempty"`

	BirthdayDay   *int `json:"birthday_day,omitempty"`
	BirthdayMonth *int `json:"birthday_month,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed_to_list_clients",
		})
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsCPFValid(req.CPF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_cpf"})
		return
	}

	client := models.Client{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Address:       req.Address,
		Preferences:   req.Preferences,
		CPF:           validators.NormalizeCPF(req.CPF),
		BirthdayDay:   req.BirthdayDay,
		BirthdayMonth: req.BirthdayMonth,
	}

	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var client models.Client
	if err := h.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_client"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Preferences != nil {
		client.Preferences = *req.Preferences
	}
	if req.CPF != nil {
		if !validators.IsCPFValid(*req.CPF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_cpf"})
			return
		}
		client.CPF = validators.NormalizeCPF(*req.CPF)
	}
	if req.BirthdayDay != nil {
		client.BirthdayDay = *req.BirthdayDay
	}
	if req.BirthdayMonth != nil {
		client.BirthdayMonth = *req.BirthdayMonth
	}

	if err := h.db.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_client"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, client)
}
