package models

import "time"

// Categoria groups products.
type Categoria struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Categoria) TableName() string { return "categorias" }
