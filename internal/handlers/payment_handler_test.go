package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindAmount(t *testing.T, body string) (EditPaymentAmountRequest, error) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PATCH", "/me/payments/p1/amount", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req EditPaymentAmountRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestEditPaymentAmountRequest_ZeroIsAccepted(t *testing.T) {
	req, err := bindAmount(t, `{"amount": 0}`)

	require.NoError(t, err)
	require.NotNil(t, req.Amount)
	assert.Equal(t, 0.0, *req.Amount)
}

func TestEditPaymentAmountRequest_MissingAmountRejected(t *testing.T) {
	_, err := bindAmount(t, `{}`)
	assert.Error(t, err)
}
