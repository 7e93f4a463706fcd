package invoice

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/maxjeon97/biztime/internal/http/httpx"
	"github.com/maxjeon97/biztime/internal/invoice"
)

type Handler struct {
	svc      *invoice.Service
	validate *validator.Validate
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func invoiceID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.List(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(invs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toDetailResponse(inv))
}

// Fields are pointers so an absent key can be told apart from a present but
// zero value; only presence is validated.
type createInvoiceRequest struct {
	CompCode *string  `json:"comp_code" validate:"required"`
	Amt      *float64 `json:"amt" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request",
			"must have comp_code, amt in request")

		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		CompCode: *req.CompCode,
		Amt:      *req.Amt,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(inv))
}

type updateInvoiceRequest struct {
	ID   *int64   `json:"id"`
	Amt  *float64 `json:"amt" validate:"required"`
	Paid *bool    `json:"paid" validate:"required"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	if req.ID != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invoice id cannot be changed")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request",
			"must have amt, paid in request")

		return
	}

	inv, err := h.svc.Update(r.Context(), id, invoice.UpdateParams{
		Amt:  *req.Amt,
		Paid: *req.Paid,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid invoice id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
