package valueobjects

import (
	"strings"

	"github.com/estudai/estudai-backend/internal/domain/errors"
)

// Política de senha forte: mínimo 6 caracteres, pelo menos uma letra
// minúscula, uma maiúscula, um dígito e um símbolo dentre @$!%*?&.
// Caracteres fora desse alfabeto invalidam a senha.
const simbolosPermitidos = "@$!%*?&"

// SenhaForte é um value object que só existe para senhas que passam
// na política de força. O valor nunca é persistido; vira digest antes.
type SenhaForte struct {
	value string
}

// NewSenhaForte valida a política de força e devolve o value object.
// Retorna errors.ErrSenhaFraca quando a senha não atende à política.
func NewSenhaForte(senha string) (SenhaForte, error) {
	if !isSenhaForte(senha) {
		return SenhaForte{}, errors.ErrSenhaFraca
	}
	return SenhaForte{value: senha}, nil
}

// String retorna a senha em texto puro.
// Uso restrito: entregar ao hasher.
func (s SenhaForte) String() string {
	return s.value
}

// isSenhaForte aplica a política de força caractere a caractere.
// O regexp original usava lookaheads, que o RE2 do Go não suporta;
// a varredura única abaixo tem a mesma semântica.
func isSenhaForte(senha string) bool {
	if len(senha) < 6 {
		return false
	}

	var temMinuscula, temMaiuscula, temDigito, temSimbolo bool

	for _, r := range senha {
		switch {
		case r >= 'a' && r <= 'z':
			temMinuscula = true
		case r >= 'A' && r <= 'Z':
			temMaiuscula = true
		case r >= '0' && r <= '9':
			temDigito = true
		case strings.ContainsRune(simbolosPermitidos, r):
			temSimbolo = true
		default:
			// caractere fora do alfabeto permitido
			return false
		}
	}

	return temMinuscula && temMaiuscula && temDigito && temSimbolo
}
