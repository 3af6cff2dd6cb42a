package entities

import (
	"errors"
	"strings"
	"time"
)

// Mensagem representa uma mensagem postada no mural da comunidade.
// Registros são imutáveis: uma vez postada, a mensagem nunca muda.
//
// UsuarioNome é uma cópia desnormalizada do nome do autor no momento
// do post, evitando join na leitura do mural.
type Mensagem struct {
	ID          uint
	UsuarioID   uint
	UsuarioNome string
	Mensagem    string
	Data        time.Time
}

// Validate valida regras de negócio da entidade Mensagem
func (m *Mensagem) Validate() error {
	if m.UsuarioID == 0 {
		return errors.New("usuario_id is required")
	}

	if strings.TrimSpace(m.UsuarioNome) == "" {
		return errors.New("usuario_nome is required")
	}

	if strings.TrimSpace(m.Mensagem) == "" {
		return errors.New("mensagem is required")
	}

	return nil
}
