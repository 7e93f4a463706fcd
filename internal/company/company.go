package company

import "errors"

// ErrNotFound is returned when no company exists for the given code.
var ErrNotFound = errors.New("this company does not exist")

// Company represents a business entity that invoices are billed against.
type Company struct {
	Code        string
	Name        string
	Description string
	InvoiceIDs  []int64 // Loaded on detail reads only.
}
