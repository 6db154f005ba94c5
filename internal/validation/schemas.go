package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Every schema field is a pointer so that "absent" and "zero" differ: create
// rejects absent required fields, update skips them.

type CategoriaInput struct {
	Nome *string `json:"nome" validate:"required,min=2,max=100"`
}

type ProdutoInput struct {
	Nome        *string `json:"nome" validate:"required,min=2,max=150"`
	Preco       *Amount `json:"preco" validate:"required,gt=0,lt=10000000000,maxdecimals=2"`
	Estoque     *int    `json:"estoque" validate:"required,gte=0,max=2147483647"`
	CategoriaID *int    `json:"categoriaId" validate:"required,gt=0"`
}

type ClienteInput struct {
	Nome     *string `json:"nome" validate:"required,min=2,max=100"`
	Email    *string `json:"email" validate:"required,email,max=255"`
	CPF      *string `json:"cpf" validate:"required,len=11,number"`
	Telefone *string `json:"telefone" validate:"omitempty,min=10,max=15"`
}

type PedidoInput struct {
	ClienteID  *int    `json:"clienteId" validate:"required,gt=0"`
	DataPedido *string `json:"dataPedido" validate:"required,isodate,notfuture"`
	Status     *string `json:"status" validate:"omitempty,oneof=pendente pago enviado entregue cancelado"`
}

// PedidoItemInput adds a product line to an order. PrecoUnitario defaults to
// the product's current price when omitted.
type PedidoItemInput struct {
	PedidoID      *int    `json:"pedidoId" validate:"required,gt=0"`
	ProdutoID     *int    `json:"produtoId" validate:"required,gt=0"`
	Quantidade    *int    `json:"quantidade" validate:"required,gt=0,max=2147483647"`
	PrecoUnitario *Amount `json:"precoUnitario" validate:"omitempty,gt=0,lt=10000000000,maxdecimals=2"`
}

// messages is keyed by "<Schema>.<Field>.<tag>".
var messages = map[string]string{
	"CategoriaInput.Nome.min": "Nome da categoria deve ter pelo menos 2 caracteres",
	"CategoriaInput.Nome.max": "Nome da categoria deve ter no máximo 100 caracteres",

	"ProdutoInput.Nome.min":          "Nome do produto deve ter pelo menos 2 caracteres",
	"ProdutoInput.Nome.max":          "Nome do produto deve ter no máximo 150 caracteres",
	"ProdutoInput.Preco.gt":          "Preço deve ser um número positivo",
	"ProdutoInput.Preco.lt":          "Preço deve ser menor que 10000000000",
	"ProdutoInput.Preco.maxdecimals": "Preço deve ter no máximo 2 casas decimais",
	"ProdutoInput.Estoque.gte":       "Estoque não pode ser negativo",
	"ProdutoInput.Estoque.max":       "Estoque deve ser no máximo 2147483647",
	"ProdutoInput.CategoriaID.gt":    "ID da categoria deve ser positivo",

	"ClienteInput.Nome.min":     "Nome deve ter pelo menos 2 caracteres",
	"ClienteInput.Nome.max":     "Nome deve ter no máximo 100 caracteres",
	"ClienteInput.Email.email":  "Email deve ter um formato válido",
	"ClienteInput.Email.max":    "Email deve ter no máximo 255 caracteres",
	"ClienteInput.CPF.len":      "CPF deve ter exatamente 11 dígitos",
	"ClienteInput.CPF.number":   "CPF deve conter apenas números",
	"ClienteInput.Telefone.min": "Telefone deve ter pelo menos 10 caracteres",
	"ClienteInput.Telefone.max": "Telefone deve ter no máximo 15 caracteres",

	"PedidoInput.ClienteID.gt":         "ID do cliente deve ser positivo",
	"PedidoInput.DataPedido.isodate":   "Data do pedido deve ser uma data válida",
	"PedidoInput.DataPedido.notfuture": "Data do pedido não pode ser no futuro",
	"PedidoInput.Status.oneof":         "Status deve ser um de: pendente, pago, enviado, entregue, cancelado",
	"PedidoItemInput.PedidoID.gt":      "ID do pedido deve ser positivo",
	"PedidoItemInput.ProdutoID.gt":     "ID do produto deve ser positivo",
	"PedidoItemInput.Quantidade.gt":    "Quantidade deve ser positiva",
	"PedidoItemInput.Quantidade.max":   "Quantidade deve ser no máximo 2147483647",
	"PedidoItemInput.PrecoUnitario.gt": "Preço unitário deve ser positivo",
	"PedidoItemInput.PrecoUnitario.lt": "Preço unitário deve ser menor que 10000000000",

	"PedidoItemInput.PrecoUnitario.maxdecimals": "Preço unitário deve ter no máximo 2 casas decimais",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s é obrigatório", fe.Field())
	}
	return fmt.Sprintf("%s é inválido", fe.Field())
}
