package schedule

import (
	"context"
	"time"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

// Detector amarra as funções puras de conflito a um Repository.
// Busca o snapshot atual das reservas do cliente e delega para a
// checagem em memória. Ids desconhecidos viram erro, nunca "sem
// conflito".
type Detector struct {
	repo Repository
}

func NewDetector(repo Repository) *Detector {
	return &Detector{repo: repo}
}

// CheckVisitConflict devolve a visita conflitante do cliente no
// instante candidato, ou nil. Leitura pura, nenhum estado é alterado.
func (d *Detector) CheckVisitConflict(
	ctx context.Context,
	clientID string,
	at time.Time,
	excludeVisitID string,
) (*models.Visit, error) {

	if _, err := d.repo.GetClient(ctx, clientID); err != nil {
		return nil, ErrUnknownClient
	}

	if excludeVisitID != "" {
		if _, err := d.repo.GetVisit(ctx, excludeVisitID); err != nil {
			return nil, ErrUnknownVisit
		}
	}

	visits, err := d.repo.ListVisitsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return FindVisitConflict(visits, clientID, at, excludeVisitID), nil
}

// CheckProjectConflict devolve o primeiro projeto do cliente cujo
// intervalo sobrepõe o candidato, ou nil.
func (d *Detector) CheckProjectConflict(
	ctx context.Context,
	clientID string,
	candidate DateRange,
	excludeProjectID string,
) (*models.Project, error) {

	if candidate.End.Before(candidate.Start) {
		return nil, ErrInvalidRange
	}

	if _, err := d.repo.GetClient(ctx, clientID); err != nil {
		return nil, ErrUnknownClient
	}

	if excludeProjectID != "" {
		if _, err := d.repo.GetProject(ctx, excludeProjectID); err != nil {
			return nil, ErrUnknownProject
		}
	}

	projects, err := d.repo.ListProjectsByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return FindProjectConflict(projects, clientID, candidate, excludeProjectID), nil
}
