package schedule

import (
	"time"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

// Funções puras de detecção de conflito. Operam sobre um snapshot em
// memória e nunca mutam nada; o chamador decide o que fazer com o
// conflito (são avisos, não bloqueios).

// FindVisitConflict procura, entre as visitas informadas, uma visita
// do mesmo cliente marcada exatamente no mesmo instante. Visitas de
// qualquer status ocupam o horário, inclusive canceladas. A visita
// com id igual a excludeVisitID é ignorada, para que a edição de uma
// visita nunca conflite com ela mesma.
func FindVisitConflict(
	visits []models.Visit,
	clientID string,
	at time.Time,
	excludeVisitID string,
) *models.Visit {

	for i := range visits {
		v := &visits[i]
		if excludeVisitID != "" && v.ID == excludeVisitID {
			continue
		}
		if v.ClientID != clientID {
			continue
		}
		if v.Date.Equal(at) {
			return v
		}
	}
	return nil
}

// FindProjectConflict procura, entre os projetos informados, o
// primeiro projeto do mesmo cliente cujo intervalo de datas sobrepõe
// o intervalo candidato (inclusivo nas duas pontas). O projeto com id
// igual a excludeProjectID é ignorado.
func FindProjectConflict(
	projects []models.Project,
	clientID string,
	candidate DateRange,
	excludeProjectID string,
) *models.Project {

	for i := range projects {
		p := &projects[i]
		if excludeProjectID != "" && p.ID == excludeProjectID {
			continue
		}
		if p.ClientID != clientID {
			continue
		}
		existing := DateRange{Start: p.StartDate, End: p.EndDate}
		if candidate.Overlaps(existing) {
			return p
		}
	}
	return nil
}
