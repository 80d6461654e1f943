package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// InsufficientStockError carrega o saldo disponível do item para que a borda
// HTTP monte a mensagem com quantidade e unidade. errors.Is(err,
// ErrInsufficientStock) continua funcionando via Is.
type InsufficientStockError struct {
	Product   string
	Available decimal.Decimal
	Unit      string
}

func (e *InsufficientStockError) Error() string {
	if e.Product != "" {
		return fmt.Sprintf("Estoque insuficiente para %s. Disponível: %s %s", e.Product, e.Available.String(), e.Unit)
	}
	return fmt.Sprintf("Estoque insuficiente. Disponível: %s %s", e.Available.String(), e.Unit)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ItemNotFoundError nomeia o item de estoque ausente em operações com várias
// linhas (venda): a mensagem identifica qual id não existe. errors.Is(err,
// ErrNotFound) continua funcionando via Is.
type ItemNotFoundError struct {
	ItemID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Item de estoque %s não encontrado", e.ItemID)
}

func (e *ItemNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
