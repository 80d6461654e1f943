package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jpcardoso/almoxarifado-api/internal/domain/entity"
	"github.com/jpcardoso/almoxarifado-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação de StockMovementRepository sobre PostgreSQL.
// Só insere e lê: o ledger nunca é alterado.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador do ledger. Aceita pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create insere um lançamento no ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, item_id, type, quantity, reason, notes, created_by, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.Type, movement.Quantity,
		movement.Reason, movement.Notes, movement.CreatedBy, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

const movementJoinQuery = `
	SELECT m.id, m.item_id, m.type, m.quantity, m.reason, m.notes, m.created_by, m.date,
	       i.id, i.product, i.unit,
	       u.id, u.matricula
	FROM stock_movements m
	JOIN stock_items i ON i.id = m.item_id
	JOIN users u ON u.id = m.created_by`

// GetByID busca um lançamento por ID com os resumos de item e responsável.
// Devolve nil se não existe.
func (r *StockMovementRepo) GetByID(id string) (*repository.MovementWithRefs, error) {
	row := r.q.QueryRow(context.Background(), movementJoinQuery+` WHERE m.id = $1`, id)
	var mv repository.MovementWithRefs
	err := scanMovementWithRefs(row, &mv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &mv, nil
}

// List devolve os lançamentos por data descendente, com filtros opcionais de
// item, tipo e período.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithRefs, error) {
	query := movementJoinQuery
	where := ""
	args := make([]any, 0, 4)
	add := func(cond string, val any) {
		args = append(args, val)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}
	if filter.ItemID != nil {
		add("m.item_id = $%d", *filter.ItemID)
	}
	if filter.Type != nil {
		add("m.type = $%d", *filter.Type)
	}
	if filter.From != nil {
		add("m.date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("m.date <= $%d", *filter.To)
	}
	query += where + ` ORDER BY m.date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*repository.MovementWithRefs, 0)
	for rows.Next() {
		var mv repository.MovementWithRefs
		if err := scanMovementWithRefs(rows, &mv); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		movements = append(movements, &mv)
	}
	return movements, rows.Err()
}

// ListRecentByItem devolve os últimos lançamentos de um item (data desc).
func (r *StockMovementRepo) ListRecentByItem(itemID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, type, quantity, reason, notes, created_by, date
		FROM stock_movements
		WHERE item_id = $1
		ORDER BY date DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, itemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()

	movements := make([]*entity.StockMovement, 0, limit)
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Type, &m.Quantity, &m.Reason, &m.Notes, &m.CreatedBy, &m.Date); err != nil {
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

func scanMovementWithRefs(row pgx.Row, mv *repository.MovementWithRefs) error {
	return row.Scan(
		&mv.Movement.ID, &mv.Movement.ItemID, &mv.Movement.Type, &mv.Movement.Quantity,
		&mv.Movement.Reason, &mv.Movement.Notes, &mv.Movement.CreatedBy, &mv.Movement.Date,
		&mv.Item.ID, &mv.Item.Product, &mv.Item.Unit,
		&mv.Actor.ID, &mv.Actor.Matricula,
	)
}
