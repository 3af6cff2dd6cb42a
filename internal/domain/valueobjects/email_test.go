package valueobjects

import (
	"errors"
	"testing"

	domainerrors "github.com/estudai/estudai-backend/internal/domain/errors"
)

func TestNewEmail(t *testing.T) {
	t.Run("normaliza para minúsculas e remove espaços", func(t *testing.T) {
		email, err := NewEmail("  Ana@Exemplo.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve %v", err)
		}
		if email.String() != "ana@exemplo.com" {
			t.Errorf("esperava 'ana@exemplo.com', obteve %q", email.String())
		}
	})

	t.Run("rejeita formatos inválidos", func(t *testing.T) {
		invalidos := []string{"", "semarroba", "@", "a@b", "a b@c.com"}

		for _, raw := range invalidos {
			_, err := NewEmail(raw)
			if !errors.Is(err, domainerrors.ErrEmailInvalido) {
				t.Errorf("NewEmail(%q): esperava ErrEmailInvalido, obteve %v", raw, err)
			}
		}
	})
}
