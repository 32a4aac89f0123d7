package finance

import (
	"github.com/shopspring/decimal"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/domain/schedule"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

// Agregados financeiros sobre a coleção de projetos/parcelas.
// Funções puras e idempotentes; toda a aritmética passa por decimal
// para que nenhum erro de acumulação binária chegue aos totais
// exibidos.
//
// O recorte por janela acontece no nível do PROJETO: uma parcela
// entra no total quando o intervalo [StartDate, EndDate] do projeto
// pai sobrepõe a janela, independente do DueDate da parcela. É o
// comportamento observado no sistema original, mantido aqui de
// propósito; SumOptions.ByDueDate expõe a interpretação alternativa
// (recorte pelo vencimento de cada parcela).

type SumOptions struct {
	ByDueDate bool
}

// TotalRealizedRevenue soma as parcelas pagas. Sem janela, soma
// incondicionalmente sobre todos os projetos.
func TotalRealizedRevenue(projects []models.Project, window *schedule.DateRange) decimal.Decimal {
	return sumPayments(projects, models.PaymentStatusPaid, window, SumOptions{})
}

// TotalPendingRevenue soma as parcelas ainda pendentes.
func TotalPendingRevenue(projects []models.Project, window *schedule.DateRange) decimal.Decimal {
	return sumPayments(projects, models.PaymentStatusPending, window, SumOptions{})
}

// TotalRealizedRevenueWith permite escolher o recorte pelo vencimento
// da parcela em vez do intervalo do projeto.
func TotalRealizedRevenueWith(projects []models.Project, window *schedule.DateRange, opts SumOptions) decimal.Decimal {
	return sumPayments(projects, models.PaymentStatusPaid, window, opts)
}

// TotalPendingRevenueWith é o espelho de TotalRealizedRevenueWith
// para parcelas pendentes.
func TotalPendingRevenueWith(projects []models.Project, window *schedule.DateRange, opts SumOptions) decimal.Decimal {
	return sumPayments(projects, models.PaymentStatusPending, window, opts)
}

func sumPayments(
	projects []models.Project,
	status string,
	window *schedule.DateRange,
	opts SumOptions,
) decimal.Decimal {

	total := decimal.Zero

	for i := range projects {
		p := &projects[i]

		projectInWindow := true
		if window != nil && !opts.ByDueDate {
			r := schedule.DateRange{Start: p.StartDate, End: p.EndDate}
			projectInWindow = window.Overlaps(r)
		}
		if !projectInWindow {
			continue
		}

		for _, pay := range p.Payments {
			if pay.Status != status {
				continue
			}
			if window != nil && opts.ByDueDate && !window.Contains(pay.DueDate) {
				continue
			}
			total = total.Add(decimal.NewFromFloat(pay.Amount))
		}
	}

	return total.Round(2)
}

// PartitionProjectsByPaymentStatus separa projetos quitados dos
// demais (pendentes ou parcialmente pagos). Uso de listagem, não de
// totalização.
func PartitionProjectsByPaymentStatus(projects []models.Project) (paid, pending []models.Project) {
	for _, p := range projects {
		if p.PaymentStatus == models.ProjectPaymentPaid {
			paid = append(paid, p)
		} else {
			pending = append(pending, p)
		}
	}
	return paid, pending
}
