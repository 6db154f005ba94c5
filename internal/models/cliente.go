package models

import "time"

// Cliente is a customer. Email and CPF are unique.
type Cliente struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	CPF       string    `json:"cpf" gorm:"column:cpf;type:char(11);not null;uniqueIndex"`
	Telefone  *string   `json:"telefone" gorm:"type:varchar(15)"`
	Pedidos   []Pedido  `json:"pedidos,omitempty" gorm:"foreignKey:ClienteID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Cliente) TableName() string { return "clientes" }
