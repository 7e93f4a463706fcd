package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maxjeon97/biztime/internal/company"
	"github.com/maxjeon97/biztime/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInvoice reads an invoice row from the scanner.
// Expected column order: id, comp_code, amt, paid, add_date, paid_date
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var paidDate sql.NullTime

	if err := s.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate); err != nil {
		return nil, err
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`

	var paidDate sql.NullTime

	err := s.db.QueryRowContext(ctx, query, inv.CompCode, inv.Amt).
		Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	return nil
}

// GetInvoice returns the invoice with its company nested via a single join.
func (s *Store) GetInvoice(ctx context.Context, id int64) (*invoice.Invoice, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON c.code = i.comp_code
		WHERE i.id = $1
	`

	var (
		inv      invoice.Invoice
		comp     company.Company
		paidDate sql.NullTime
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &paidDate,
		&comp.Code, &comp.Name, &comp.Description,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}

	inv.Company = &comp

	return &inv, nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]*invoice.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invs []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invs = append(invs, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return invs, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`

	var paidDate sql.NullTime
	if inv.PaidDate != nil {
		paidDate = sql.NullTime{Time: *inv.PaidDate, Valid: true}
	}

	var stored sql.NullTime

	err := s.db.QueryRowContext(ctx, query, inv.Amt, inv.Paid, paidDate, inv.ID).
		Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &stored)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoice.ErrNotFound
		}

		return fmt.Errorf("updating invoice: %w", err)
	}

	inv.PaidDate = nil
	if stored.Valid {
		inv.PaidDate = &stored.Time
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	query := `
		DELETE FROM invoices
		WHERE id = $1
		RETURNING id
	`

	var deleted int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(&deleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return invoice.ErrNotFound
		}

		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
