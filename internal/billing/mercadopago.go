package billing

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

var ErrNotConfigured = httperr.ErrBusiness("billing_not_configured")

// PaymentLinker gera um link de pagamento para uma parcela.
type PaymentLinker interface {
	CreatePaymentLink(ctx context.Context, project *models.Project, payment *models.Payment) (string, error)
}

// MercadoPago cria uma preference de checkout para a parcela e
// devolve o init point. Sem access token configurado, o recurso fica
// desligado.
type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	if accessToken == "" {
		return &MercadoPago{}, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPago) CreatePaymentLink(
	ctx context.Context,
	project *models.Project,
	payment *models.Payment,
) (string, error) {

	if m.client == nil {
		return "", ErrNotConfigured
	}

	title := project.Name
	if payment.Description != "" {
		title = fmt.Sprintf("%s - %s", project.Name, payment.Description)
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: payment.Amount,
			},
		},
		ExternalReference: payment.ID,
	}

	resp, err := m.client.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}

var _ PaymentLinker = (*MercadoPago)(nil)
