package invoice

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	CompCode string
	Amt      float64
}

type UpdateParams struct {
	Amt  float64
	Paid bool
}

// Create inserts a new invoice. The store fills in the generated id, the
// default unpaid state and the add date.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	inv := &Invoice{
		CompCode: params.CompCode,
		Amt:      params.Amt,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Get returns the invoice for the given id with its company loaded.
func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// Update stores a new amount and paid flag for the invoice. The prior row is
// read first so the paid date transition can be computed and persisted in the
// same statement as the other fields; if the invoice does not exist the read
// reports ErrNotFound and nothing is written.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Invoice, error) {
	prev, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	inv := &Invoice{
		ID:       id,
		Amt:      params.Amt,
		Paid:     params.Paid,
		PaidDate: NextPaidDate(prev, params.Paid, s.now()),
	}
	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteInvoice(ctx, id)
}
