package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid faz uma checagem barata de digitação no cadastro:
// o domínio do e-mail precisa resolver (MX ou, na falta dele, A/AAAA).
// Não prova que a caixa existe; só corta erro óbvio de digitação antes
// de criar o usuário.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
