package finance

import (
	"time"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

// PaymentStatusOf deriva o status agregado de pagamento a partir das
// parcelas: pago quando todas quitadas, pendente quando nenhuma,
// parcialmente pago no meio do caminho. Projeto sem parcelas conta
// como pendente.
func PaymentStatusOf(payments []models.Payment) string {
	if len(payments) == 0 {
		return models.ProjectPaymentPending
	}

	paid := 0
	for _, p := range payments {
		if p.Status == models.PaymentStatusPaid {
			paid++
		}
	}

	switch paid {
	case 0:
		return models.ProjectPaymentPending
	case len(payments):
		return models.ProjectPaymentPaid
	default:
		return models.ProjectPaymentPartial
	}
}

// ExecutionStatusOf deriva o status de execução do projeto para a
// data de referência: agendado antes do início, em andamento dentro
// do intervalo, concluído depois do fim com tudo pago, atrasado
// depois do fim com dinheiro em aberto.
func ExecutionStatusOf(p models.Project, today time.Time) string {
	if today.Before(p.StartDate) {
		return models.ProjectStatusScheduled
	}
	if !today.After(p.EndDate) {
		return models.ProjectStatusInProgress
	}
	if PaymentStatusOf(p.Payments) == models.ProjectPaymentPaid {
		return models.ProjectStatusCompleted
	}
	return models.ProjectStatusOverdue
}
