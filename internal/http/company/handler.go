package company

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/maxjeon97/biztime/internal/company"
	"github.com/maxjeon97/biztime/internal/http/httpx"
)

type Handler struct {
	svc      *company.Service
	validate *validator.Validate
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{code}", h.get)
	r.Put("/{code}", h.update)
	r.Delete("/{code}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toListResponse(cs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toDetailResponse(c))
}

// Fields are pointers so an absent key can be told apart from a present but
// empty value; only presence is validated.
type createCompanyRequest struct {
	Code        *string `json:"code" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request",
			"must have code, name, description in request")

		return
	}

	c, err := h.svc.Create(r.Context(), company.CreateParams{
		Code:        *req.Code,
		Name:        *req.Name,
		Description: *req.Description,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(c))
}

type updateCompanyRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}

	if req.Code != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "company code cannot be changed")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request",
			"must have name, description in request")

		return
	}

	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "code"), company.UpdateParams{
		Name:        *req.Name,
		Description: *req.Description,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
