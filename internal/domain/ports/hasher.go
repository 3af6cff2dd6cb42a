package ports

// PasswordHasher define a capacidade de hash de senhas.
// A implementação concreta (bcrypt) vive em infrastructure/security;
// o domínio só conhece o contrato hash/verificação.
type PasswordHasher interface {
	// Hash gera um digest irreversível da senha em texto puro
	Hash(senha string) (string, error)
	// Verify informa se a senha em texto puro corresponde ao digest
	Verify(senha, digest string) bool
}
