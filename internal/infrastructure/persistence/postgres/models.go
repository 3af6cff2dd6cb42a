package postgres

import "time"

// UsuarioModel é o model GORM para usuários.
// A tabela mantém o nome histórico "cadastrar" do schema original.
// O índice único em email fecha a corrida de cadastro duplicado no
// nível do banco; a violação vira gorm.ErrDuplicatedKey.
type UsuarioModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Nome         string  `gorm:"type:varchar(255);not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Senha        string  `gorm:"type:varchar(255);not null"` // digest bcrypt, nunca texto puro
	Foto         *string `gorm:"type:varchar(500)"`
	AtualizadoEm time.Time
}

func (UsuarioModel) TableName() string {
	return "cadastrar"
}

// MensagemModel é o model GORM para mensagens da comunidade
type MensagemModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	UsuarioID   uint      `gorm:"not null;index"`
	UsuarioNome string    `gorm:"type:varchar(255);not null"`
	Mensagem    string    `gorm:"type:text;not null"`
	Data        time.Time `gorm:"not null;index"`
}

func (MensagemModel) TableName() string {
	return "mensagens_comunidade"
}

// NotaModel é o model GORM para notas pessoais
type NotaModel struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	UsuarioID       uint   `gorm:"not null;index"`
	Conteudo        string `gorm:"type:text"`
	DataCriacao     time.Time
	DataAtualizacao time.Time
}

func (NotaModel) TableName() string {
	return "notas"
}
