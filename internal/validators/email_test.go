package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Apenas os casos sintáticos, que não dependem de DNS.
func TestIsEmailDomainValid_Syntax(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"no at sign", "ana.silva"},
		{"empty local part", "@example.com"},
		{"empty domain", "ana@"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, IsEmailDomainValid(tt.email))
		})
	}
}
