package categories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mytheresa/category-cross-sells/app/api"
	"github.com/mytheresa/category-cross-sells/models"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	CreateCategory(category *models.Category) error
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
}

type CategoryHandler struct {
	repo   CategoryProvider
	hooks  []SaveHook
	fields FormFields
	log    *slog.Logger
}

type Option func(*CategoryHandler)

// WithSaveHook registers a hook run after every category save.
func WithSaveHook(hook SaveHook) Option {
	return func(h *CategoryHandler) {
		h.hooks = append(h.hooks, hook)
	}
}

// WithFormFields adds extra inputs to the admin category forms.
func WithFormFields(fields FormFields) Option {
	return func(h *CategoryHandler) {
		h.fields = fields
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(h *CategoryHandler) {
		h.log = log
	}
}

func NewCategoryHandler(r CategoryProvider, opts ...Option) *CategoryHandler {
	h := &CategoryHandler{repo: r, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = toResponse(c)
	}

	api.OKResponse(w, response)
}

// categoryInput is the JSON body of create and update requests. A missing
// crosssell_ids leaves the category's cross-sells untouched.
type categoryInput struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CrossSellIDs *[]any `json:"crosssell_ids"`
}

func decodeInput(r *http.Request) (categoryInput, error) {
	var input categoryInput
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	err := dec.Decode(&input)
	return input, err
}

// form turns the JSON input into the values a save hook sees for a form post.
func (in categoryInput) form() url.Values {
	form := url.Values{}
	if in.CrossSellIDs == nil {
		return form
	}
	values := make([]string, 0, len(*in.CrossSellIDs))
	for _, v := range *in.CrossSellIDs {
		switch v := v.(type) {
		case json.Number:
			values = append(values, v.String())
		case string:
			values = append(values, v)
		default:
			values = append(values, "")
		}
	}
	form["crosssell_ids[]"] = values
	return form
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput(r)
	if err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Code == "" || input.Name == "" {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing code or name")
		return
	}

	category := &models.Category{
		Code: input.Code,
		Name: input.Name,
	}

	if err := h.repo.CreateCategory(category); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	if err := h.runHooks(r.Context(), newTermEvent(category.ID, TermCreated), input.form()); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to save category fields")
		return
	}

	api.CreatedResponse(w, map[string]any{
		"id":      category.ID,
		"message": "Category created successfully",
	})
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}

	input, err := decodeInput(r)
	if err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	category, err := h.repo.GetCategoryByID(r.Context(), id)
	if err != nil {
		h.notFoundOrError(w, err)
		return
	}

	if input.Code != "" {
		category.Code = input.Code
	}
	if input.Name != "" {
		category.Name = input.Name
	}
	if err := h.repo.UpdateCategory(r.Context(), category); err != nil {
		h.notFoundOrError(w, err)
		return
	}

	if err := h.runHooks(r.Context(), newTermEvent(category.ID, TermEdited), input.form()); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to save category fields")
		return
	}

	api.OKResponse(w, toResponse(*category))
}

func (h *CategoryHandler) runHooks(ctx context.Context, ev TermEvent, form url.Values) error {
	for _, hook := range h.hooks {
		if err := hook.CategorySaved(ctx, ev, form); err != nil {
			h.log.ErrorContext(ctx, "category save hook failed",
				"category_id", ev.TermID, "action", ev.Action, "error", err)
			return fmt.Errorf("category %d %s hook: %w", ev.TermID, ev.Action, err)
		}
	}
	return nil
}

func (h *CategoryHandler) notFoundOrError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrCategoryNotFound) {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	api.ErrorResponse(w, http.StatusInternalServerError, "Failed to update category")
}

func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(r.PathValue("id")), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func toResponse(c models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Code: c.Code,
		Name: c.Name,
	}
}
