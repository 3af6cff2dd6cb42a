package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUsuarioNaoEncontrado = errors.New("error.usuario_nao_encontrado")
	ErrEmailNaoEncontrado   = errors.New("error.email_nao_encontrado")
	ErrEmailJaCadastrado    = errors.New("error.email_ja_cadastrado")
	ErrSenhaIncorreta       = errors.New("error.senha_incorreta")
	ErrSenhaFraca           = errors.New("error.senha_fraca")
)

// Domain errors
var (
	ErrEmailInvalido = errors.New("error.email_invalido")
)
