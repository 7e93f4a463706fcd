package invoice

import (
	"time"

	"github.com/maxjeon97/biztime/internal/invoice"
)

type invoiceResponse struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type companyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type invoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  companyResponse `json:"company"`
}

type invoiceListItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

type listResponse struct {
	Invoices []invoiceListItem `json:"invoices"`
}

type invoiceEnvelope struct {
	Invoice invoiceResponse `json:"invoice"`
}

type detailEnvelope struct {
	Invoice invoiceDetailResponse `json:"invoice"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func toResponse(inv *invoice.Invoice) invoiceEnvelope {
	return invoiceEnvelope{Invoice: invoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}}
}

func toDetailResponse(inv *invoice.Invoice) detailEnvelope {
	return detailEnvelope{Invoice: invoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company: companyResponse{
			Code:        inv.Company.Code,
			Name:        inv.Company.Name,
			Description: inv.Company.Description,
		},
	}}
}

func toListResponse(invs []*invoice.Invoice) listResponse {
	items := make([]invoiceListItem, len(invs))
	for i, inv := range invs {
		items[i] = invoiceListItem{ID: inv.ID, CompCode: inv.CompCode}
	}

	return listResponse{Invoices: items}
}
