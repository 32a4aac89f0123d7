package models

import "time"

// Configuração única do sistema: vocabulários usados pelos
// formulários de criação/edição. Editada apenas por admins.
type MasterData struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PaymentStatuses []string `gorm:"serializer:json;type:text" json:"payment_statuses"`
	VisitStatuses   []string `gorm:"serializer:json;type:text" json:"visit_statuses"`
	PhotoTypes      []string `gorm:"serializer:json;type:text" json:"photo_types"`

	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultMasterData é a linha semeada no primeiro boot.
func DefaultMasterData() MasterData {
	return MasterData{
		ID: 1,
		PaymentStatuses: []string{
			ProjectPaymentPaid,
			ProjectPaymentPending,
			ProjectPaymentPartial,
		},
		VisitStatuses: []string{
			VisitStatusPending,
			VisitStatusCompleted,
			VisitStatusCancelled,
			VisitStatusQuote,
		},
		PhotoTypes: []string{
			PhotoTypeCamera,
			PhotoTypeUpload,
		},
	}
}
