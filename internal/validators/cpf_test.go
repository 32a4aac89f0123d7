package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCPFValid(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{name: "empty is valid (optional field)", cpf: "", want: true},
		{name: "valid with punctuation", cpf: "529.982.247-25", want: true},
		{name: "valid digits only", cpf: "52998224725", want: true},
		{name: "bad check digit", cpf: "529.982.247-26", want: false},
		{name: "repeated digits", cpf: "111.111.111-11", want: false},
		{name: "too short", cpf: "1234567890", want: false},
		{name: "letters", cpf: "529a982b247c25", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCPFValid(tt.cpf))
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeCPF("529.982.247-25"))
	assert.Equal(t, "", NormalizeCPF(""))
}
