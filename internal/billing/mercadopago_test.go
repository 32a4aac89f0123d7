package billing

import (
	"context"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/models"
)

func TestMercadoPago_DisabledWithoutToken(t *testing.T) {
	mp, err := NewMercadoPago("")
	require.NoError(t, err)

	_, err = mp.CreatePaymentLink(
		context.Background(),
		&models.Project{Name: "Closet"},
		&models.Payment{ID: "p1", Amount: 100},
	)

	assert.True(t, httperr.IsBusiness(err, "billing_not_configured"))
}

// Garante que o request de preference monta com os tipos do SDK.
func TestPreferenceItemShape(t *testing.T) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{Title: "Closet - entrada", Quantity: 1, UnitPrice: 100},
		},
		ExternalReference: "p1",
	}

	require.Len(t, req.Items, 1)
	assert.Equal(t, "Closet - entrada", req.Items[0].Title)
}
