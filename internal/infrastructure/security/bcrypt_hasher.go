package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/estudai/estudai-backend/internal/domain/ports"
)

// DefaultCost é o fator de trabalho do bcrypt usado em produção.
// Mesmo custo do sistema original.
const DefaultCost = 10

// BcryptHasher implementa ports.PasswordHasher usando bcrypt.
// O digest gerado embute sal e custo; não há coluna de sal separada.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo informado.
// Custos fora da faixa do bcrypt caem no DefaultCost.
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(senha string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(senha, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(senha)) == nil
}
