// Package models holds the GORM entities of the store.
package models

import "github.com/shopspring/decimal"

func init() {
	// Prices are rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Pedido status values.
const (
	StatusPendente  = "pendente"
	StatusPago      = "pago"
	StatusEnviado   = "enviado"
	StatusEntregue  = "entregue"
	StatusCancelado = "cancelado"
)
