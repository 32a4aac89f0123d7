package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

// Tolerância para a invariante soma-das-parcelas == valor.
var tolerance = decimal.NewFromFloat(0.01)

var (
	ErrPrecisionMismatch = httperr.ErrBusiness("precision_mismatch")
	ErrNegativeValue     = httperr.ErrBusiness("negative_value")
	ErrInvalidMethod     = httperr.ErrBusiness("invalid_payment_method")
)

// PaymentsMatchValue verifica a invariante do projeto: a soma dos
// amounts das parcelas igual ao valor total, dentro de 0.01.
func PaymentsMatchValue(payments []models.Payment, value float64) bool {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(decimal.NewFromFloat(p.Amount))
	}
	diff := sum.Sub(decimal.NewFromFloat(value)).Abs()
	return diff.LessThanOrEqual(tolerance)
}

// SplitInstallments gera as parcelas de um projeto novo: uma entrada
// única à vista, ou duas metades quando parcelado. A primeira
// parcela absorve o resto do arredondamento para a soma fechar
// exata. Vencimentos: a entrada vence no início do projeto e a
// segunda parcela no fim.
func SplitInstallments(value float64, method string, start, end time.Time) ([]models.Payment, error) {
	if value < 0 {
		return nil, ErrNegativeValue
	}

	total := decimal.NewFromFloat(value).Round(2)

	switch method {
	case models.PaymentMethodFull:
		amount, _ := total.Float64()
		return []models.Payment{
			{
				Amount:      amount,
				Status:      models.PaymentStatusPending,
				DueDate:     start,
				Description: "pagamento integral",
			},
		}, nil

	case models.PaymentMethodInstallment:
		second := total.Div(decimal.NewFromInt(2)).RoundDown(2)
		first := total.Sub(second)

		firstAmount, _ := first.Float64()
		secondAmount, _ := second.Float64()

		return []models.Payment{
			{
				Amount:      firstAmount,
				Status:      models.PaymentStatusPending,
				DueDate:     start,
				Description: "entrada",
			},
			{
				Amount:      secondAmount,
				Status:      models.PaymentStatusPending,
				DueDate:     end,
				Description: "2ª parcela",
			},
		}, nil
	}

	return nil, ErrInvalidMethod
}

// RescaleInstallments reescala as parcelas proporcionalmente quando o
// valor total do projeto muda. A última parcela absorve o resto do
// arredondamento, mantendo a invariante exata. Status e vencimentos
// são preservados.
func RescaleInstallments(payments []models.Payment, newValue float64) error {
	if newValue < 0 {
		return ErrNegativeValue
	}
	if len(payments) == 0 {
		return nil
	}

	oldTotal := decimal.Zero
	for _, p := range payments {
		oldTotal = oldTotal.Add(decimal.NewFromFloat(p.Amount))
	}

	newTotal := decimal.NewFromFloat(newValue).Round(2)

	if oldTotal.IsZero() {
		// Não há proporção a preservar: divide igualmente.
		share := newTotal.Div(decimal.NewFromInt(int64(len(payments)))).Round(2)
		assigned := decimal.Zero
		for i := range payments {
			amt := share
			if i == len(payments)-1 {
				amt = newTotal.Sub(assigned)
			}
			payments[i].Amount, _ = amt.Float64()
			assigned = assigned.Add(amt)
		}
		return nil
	}

	ratio := newTotal.Div(oldTotal)
	assigned := decimal.Zero
	for i := range payments {
		var amt decimal.Decimal
		if i == len(payments)-1 {
			amt = newTotal.Sub(assigned)
		} else {
			amt = decimal.NewFromFloat(payments[i].Amount).Mul(ratio).Round(2)
		}
		payments[i].Amount, _ = amt.Float64()
		assigned = assigned.Add(amt)
	}

	return nil
}

// FormatBRL formata um decimal como moeda para exibição.
func FormatBRL(d decimal.Decimal) string {
	return fmt.Sprintf("R$ %s", d.StringFixed(2))
}
