package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pietersz/kassabon/constants"
	"github.com/pietersz/kassabon/internal/common"
	"github.com/pietersz/kassabon/internal/entity"
)

type ReceiptRepository interface {
	Save(ctx context.Context, rec *entity.Receipt) error
	GetByID(ctx context.Context, id string) (*entity.Receipt, error)
	// List returns all receipts, most recent purchase date first, each
	// with its items in source order.
	List(ctx context.Context) ([]*entity.Receipt, error)
	Update(ctx context.Context, rec *entity.Receipt) error
	Delete(ctx context.Context, id string) error
}

type receiptRepository struct {
	db     *DB
	logger *slog.Logger
}

func NewReceiptRepository(db *DB, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{db: db, logger: logger}
}

func (r *receiptRepository) Save(ctx context.Context, rec *entity.Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		r.db.rebind(`INSERT INTO receipts (id, date, store_name, total, created_at) VALUES (?, ?, ?, ?, ?)`),
		rec.ID, rec.Date, rec.StoreName, rec.Total, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	if err := r.insertItems(ctx, tx, rec); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.logger.Info("receipt saved", "id", rec.ID, "date", rec.Date, "items", len(rec.Items), "total", rec.Total)
	return nil
}

func (r *receiptRepository) insertItems(ctx context.Context, tx *sql.Tx, rec *entity.Receipt) error {
	stmt := r.db.rebind(`INSERT INTO receipt_items (receipt_id, position, name, quantity, price, category) VALUES (?, ?, ?, ?, ?, ?)`)
	for i, item := range rec.Items {
		if _, err := tx.ExecContext(ctx, stmt,
			rec.ID, i, item.Name, item.Quantity, item.Price, string(item.Category)); err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	return nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	rec := &entity.Receipt{}
	err := r.db.QueryRowContext(ctx,
		r.db.rebind(`SELECT id, date, store_name, total FROM receipts WHERE id = ?`), id).
		Scan(&rec.ID, &rec.Date, &rec.StoreName, &rec.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query receipt: %w", err)
	}

	items, err := r.itemsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Items = items
	return rec, nil
}

func (r *receiptRepository) itemsFor(ctx context.Context, receiptID string) ([]entity.ReceiptItem, error) {
	rows, err := r.db.QueryContext(ctx,
		r.db.rebind(`SELECT name, quantity, price, category FROM receipt_items WHERE receipt_id = ? ORDER BY position`),
		receiptID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]entity.ReceiptItem, 0)
	for rows.Next() {
		var item entity.ReceiptItem
		var category string
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Price, &category); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Category = constants.ProductCategory(category)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *receiptRepository) List(ctx context.Context) ([]*entity.Receipt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, store_name, total FROM receipts ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query receipts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	receipts := make([]*entity.Receipt, 0)
	for rows.Next() {
		rec := &entity.Receipt{}
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.StoreName, &rec.Total); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		receipts = append(receipts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, rec := range receipts {
		items, err := r.itemsFor(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Items = items
	}
	return receipts, nil
}

// Update replaces the stored receipt wholesale, items included. The
// parser output is immutable; updates come from manual edits.
func (r *receiptRepository) Update(ctx context.Context, rec *entity.Receipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		r.db.rebind(`UPDATE receipts SET date = ?, store_name = ?, total = ? WHERE id = ?`),
		rec.Date, rec.StoreName, rec.Total, rec.ID)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("receipt %s: %w", rec.ID, common.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		r.db.rebind(`DELETE FROM receipt_items WHERE receipt_id = ?`), rec.ID); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if err := r.insertItems(ctx, tx, rec); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *receiptRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		r.db.rebind(`DELETE FROM receipt_items WHERE receipt_id = ?`), id); err != nil {
		return fmt.Errorf("delete items: %w", err)
	}
	res, err := tx.ExecContext(ctx, r.db.rebind(`DELETE FROM receipts WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.logger.Info("receipt deleted", "id", id)
	return nil
}
