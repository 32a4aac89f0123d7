package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status de visita (vocabulário também exposto em MasterData).
const (
	VisitStatusPending   = "pendente"
	VisitStatusCompleted = "realizada"
	VisitStatusCancelled = "cancelada"
	VisitStatusQuote     = "orcamento"
)

// Visita agendada: um instante único, não um intervalo.
type Visit struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Projeto originado desta visita, quando houver.
	ProjectID *string `gorm:"size:36" json:"project_id"`

	Date   time.Time `gorm:"not null" json:"date"`
	Status string    `gorm:"size:20;default:'pendente'" json:"status"`

	Summary string `gorm:"type:text" json:"summary"`

	Photos []Photo `gorm:"foreignKey:VisitID" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
