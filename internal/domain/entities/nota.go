package entities

import (
	"errors"
	"time"
)

// Nota representa uma anotação pessoal de um usuário.
// Conteúdo vazio é permitido: o usuário pode criar a nota e preenchê-la depois.
type Nota struct {
	ID              uint
	UsuarioID       uint
	Conteudo        string
	DataCriacao     time.Time
	DataAtualizacao time.Time
}

// AtualizarConteudo substitui o conteúdo e marca a atualização.
// DataCriacao nunca é alterada após a criação.
func (n *Nota) AtualizarConteudo(conteudo string, agora time.Time) {
	n.Conteudo = conteudo
	n.DataAtualizacao = agora
}

// Validate valida regras de negócio da entidade Nota
func (n *Nota) Validate() error {
	if n.UsuarioID == 0 {
		return errors.New("usuario_id is required")
	}

	return nil
}
