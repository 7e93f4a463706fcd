package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/maxjeon97/biztime/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCompany(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	err := s.db.QueryRowContext(ctx, query, c.Code, c.Name, c.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return fmt.Errorf("creating company: %w", err)
	}

	return nil
}

func (s *Store) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies
		WHERE code = $1
	`

	var c company.Company

	err := s.db.QueryRowContext(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, company.ErrNotFound
		}

		return nil, fmt.Errorf("getting company: %w", err)
	}

	ids, err := s.invoiceIDs(ctx, code)
	if err != nil {
		return nil, err
	}

	c.InvoiceIDs = ids

	return &c, nil
}

// invoiceIDs returns the ids of all invoices billed against the company,
// oldest first. Never nil: a company without invoices gets an empty slice so
// the detail view serializes as an empty list.
func (s *Store) invoiceIDs(ctx context.Context, code string) ([]int64, error) {
	query := `
		SELECT id
		FROM invoices
		WHERE comp_code = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("listing company invoices: %w", err)
	}
	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning invoice id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice ids: %w", err)
	}

	return ids, nil
}

func (s *Store) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	query := `
		SELECT code, name
		FROM companies
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var cs []*company.Company

	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		cs = append(cs, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating companies: %w", err)
	}

	return cs, nil
}

func (s *Store) UpdateCompany(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`

	err := s.db.QueryRowContext(ctx, query, c.Name, c.Description, c.Code).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return company.ErrNotFound
		}

		return fmt.Errorf("updating company: %w", err)
	}

	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	query := `
		DELETE FROM companies
		WHERE code = $1
		RETURNING code
	`

	var deleted string

	err := s.db.QueryRowContext(ctx, query, code).Scan(&deleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return company.ErrNotFound
		}

		return fmt.Errorf("deleting company: %w", err)
	}

	return nil
}
