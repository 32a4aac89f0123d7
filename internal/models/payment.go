package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status individuais de parcela.
const (
	PaymentStatusPending = "pendente"
	PaymentStatusPaid    = "pago"
)

// Status agregados de pagamento do projeto.
const (
	ProjectPaymentPaid    = "pago"
	ProjectPaymentPending = "pendente"
	ProjectPaymentPartial = "parcialmente_pago"
)

// Parcela de um projeto. Uma entrada para pagamento à vista,
// duas quando parcelado.
type Payment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ProjectID string `gorm:"size:36;index;not null" json:"project_id"`

	Amount float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status string  `gorm:"size:20;default:'pendente'" json:"status"`

	DueDate time.Time `gorm:"type:date" json:"due_date"`

	// Ex.: "entrada", "1ª parcela", "pagamento integral".
	Description string `gorm:"size:100" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
