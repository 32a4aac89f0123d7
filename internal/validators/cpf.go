package validators

import "strings"

// IsCPFValid valida o dígito verificador de um CPF. Aceita o formato
// pontuado (000.000.000-00) ou apenas dígitos. CPF vazio é válido
// porque o campo é opcional no cadastro.
func IsCPFValid(cpf string) bool {
	if cpf == "" {
		return true
	}

	digits := make([]int, 0, 11)
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == ' ':
			// separadores permitidos
		default:
			return false
		}
	}

	if len(digits) != 11 {
		return false
	}

	// Sequências repetidas (111.111.111-11 etc.) passam no mod-11
	// mas são inválidas.
	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if checkDigit(digits, 9) != digits[9] {
		return false
	}
	return checkDigit(digits, 10) == digits[10]
}

func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// NormalizeCPF remove a pontuação para armazenamento uniforme.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
