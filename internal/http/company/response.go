package company

import (
	"github.com/maxjeon97/biztime/internal/company"
)

type companyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type companyDetailResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Invoices    []int64 `json:"invoices"`
}

type companyListItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type listResponse struct {
	Companies []companyListItem `json:"companies"`
}

type companyEnvelope struct {
	Company companyResponse `json:"company"`
}

type detailEnvelope struct {
	Company companyDetailResponse `json:"company"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func toResponse(c *company.Company) companyEnvelope {
	return companyEnvelope{Company: companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}}
}

func toDetailResponse(c *company.Company) detailEnvelope {
	ids := c.InvoiceIDs
	if ids == nil {
		ids = []int64{}
	}

	return detailEnvelope{Company: companyDetailResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    ids,
	}}
}

func toListResponse(cs []*company.Company) listResponse {
	items := make([]companyListItem, len(cs))
	for i, c := range cs {
		items[i] = companyListItem{Code: c.Code, Name: c.Name}
	}

	return listResponse{Companies: items}
}
