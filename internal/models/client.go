package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente do serviço de organização. Nunca é removido fisicamente.
type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	// Preferências de organização, restrições, observações livres.
	Preferences string `gorm:"type:text" json:"preferences"`

	CPF string `gorm:"size:14" json:"cpf"`

	// Aniversário sem ano (dia/mês). Zero = não informado.
	BirthdayDay   int `json:"birthday_day"`
	BirthdayMonth int `json:"birthday_month"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
