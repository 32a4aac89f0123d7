package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Forma de pagamento do projeto.
const (
	PaymentMethodFull        = "avista"
	PaymentMethodInstallment = "parcelado"
)

// Status de execução, derivado das datas e do pagamento.
const (
	ProjectStatusScheduled  = "agendado"
	ProjectStatusInProgress = "em_andamento"
	ProjectStatusCompleted  = "concluido"
	ProjectStatusOverdue    = "atrasado"
)

// Projeto: unidade de trabalho faturável, com intervalo de datas
// (sem hora) e uma ou duas parcelas. Invariante: a soma das parcelas
// é igual a Value com tolerância de 0.01.
type Project struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID string `gorm:"size:36;index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Visita que originou o projeto, quando houver.
	VisitID *string `gorm:"size:36" json:"visit_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	Value         float64 `gorm:"type:decimal(10,2);not null" json:"value"`
	PaymentMethod string  `gorm:"size:20;default:'avista'" json:"payment_method"`

	// Derivado das parcelas, persistido para listagem e partição.
	PaymentStatus string `gorm:"size:30;default:'pendente'" json:"payment_status"`

	Payments []Payment `gorm:"foreignKey:ProjectID" json:"payments"`
	Photos   []Photo   `gorm:"foreignKey:ProjectID" json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
