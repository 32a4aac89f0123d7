package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lado da documentação fotográfica de um projeto.
const (
	PhotoSideBefore = "antes"
	PhotoSideAfter  = "depois"
)

// Origem da foto.
const (
	PhotoTypeCamera = "camera"
	PhotoTypeUpload = "upload"
)

// Foto de documentação. Pertence a uma visita ou a um lado
// (antes/depois) de um projeto. Imutável depois de criada.
type Photo struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	VisitID   *string `gorm:"size:36;index" json:"visit_id"`
	ProjectID *string `gorm:"size:36;index" json:"project_id"`

	// Preenchido apenas para fotos de projeto.
	Side string `gorm:"size:10" json:"side"`

	// URL no bucket ou data URL quando o storage externo não
	// está configurado.
	URL string `gorm:"type:text;not null" json:"url"`

	Description string `gorm:"size:255;not null" json:"description"`
	Type        string `gorm:"size:10;default:'upload'" json:"type"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
