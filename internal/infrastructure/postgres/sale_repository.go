package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação de SaleRepository sobre PostgreSQL (usável com pool
// ou tx). Create deve rodar dentro de uma transação junto com as baixas de
// estoque; fora disso as linhas poderiam ficar órfãs em caso de falha.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de vendas. Aceita pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create insere a venda e suas linhas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, buyer_id, seller_id, total, status, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.BuyerID, sale.SellerID, sale.Total, sale.Status, sale.Notes, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	lineQuery := `
		INSERT INTO sale_items (id, sale_id, item_id, line_no, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, l := range sale.Lines {
		_, err := r.q.Exec(ctx, lineQuery, l.ID, l.SaleID, l.ItemID, i, l.Quantity, l.UnitPrice, l.Subtotal)
		if err != nil {
			return fmt.Errorf("create sale item: %w", err)
		}
	}
	return nil
}

const saleSelectQuery = `
	SELECT s.id, s.buyer_id, s.seller_id, s.total, s.status, s.notes, s.date,
	       u.id, u.matricula
	FROM sales s
	JOIN users u ON u.id = s.seller_id`

// GetByID busca uma venda com linhas e resumo do vendedor. Devolve nil se não
// existe.
func (r *SaleRepo) GetByID(id string) (*repository.SaleWithRefs, error) {
	row := r.q.QueryRow(context.Background(), saleSelectQuery+` WHERE s.id = $1`, id)
	var sw repository.SaleWithRefs
	err := scanSale(row, &sw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	lines, err := r.linesFor(sw.Sale.ID)
	if err != nil {
		return nil, err
	}
	sw.Lines = lines
	return &sw, nil
}

// List devolve as vendas por data descendente, com filtros opcionais de
// período, status, vendedor e cliente.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleWithRefs, error) {
	query := saleSelectQuery
	where := ""
	args := make([]any, 0, 5)
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if filter.From != nil {
		add("s.date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("s.date <= $%d", *filter.To)
	}
	if filter.Status != nil {
		add("s.status = $%d", *filter.Status)
	}
	if filter.SellerID != nil {
		add("s.seller_id = $%d", *filter.SellerID)
	}
	if filter.BuyerID != nil {
		add("s.buyer_id = $%d", *filter.BuyerID)
	}
	query += where + ` ORDER BY s.date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]*repository.SaleWithRefs, 0)
	for rows.Next() {
		var sw repository.SaleWithRefs
		if err := scanSale(rows, &sw); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &sw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, sw := range sales {
		lines, err := r.linesFor(sw.Sale.ID)
		if err != nil {
			return nil, err
		}
		sw.Lines = lines
	}
	return sales, nil
}

// UpdateStatus troca o status e devolve a venda atualizada. Devolve nil se a
// venda não existe.
func (r *SaleRepo) UpdateStatus(id, status string) (*repository.SaleWithRefs, error) {
	tag, err := r.q.Exec(context.Background(), `UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return nil, fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *SaleRepo) linesFor(saleID string) ([]repository.SaleLineWithItem, error) {
	query := `
		SELECT si.id, si.sale_id, si.item_id, si.quantity, si.unit_price, si.subtotal,
		       i.id, i.product, i.unit
		FROM sale_items si
		JOIN stock_items i ON i.id = si.item_id
		WHERE si.sale_id = $1
		ORDER BY si.line_no`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	lines := make([]repository.SaleLineWithItem, 0)
	for rows.Next() {
		var l repository.SaleLineWithItem
		err := rows.Scan(
			&l.Line.ID, &l.Line.SaleID, &l.Line.ItemID, &l.Line.Quantity, &l.Line.UnitPrice, &l.Line.Subtotal,
			&l.Item.ID, &l.Item.Product, &l.Item.Unit,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanSale(row pgx.Row, sw *repository.SaleWithRefs) error {
	return row.Scan(
		&sw.Sale.ID, &sw.Sale.BuyerID, &sw.Sale.SellerID, &sw.Sale.Total,
		&sw.Sale.Status, &sw.Sale.Notes, &sw.Sale.Date,
		&sw.Seller.ID, &sw.Seller.Matricula,
	)
}
