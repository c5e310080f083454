package categories

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/mytheresa/category-cross-sells/app/api"
	"github.com/mytheresa/category-cross-sells/models"
)

var pages = template.Must(template.New("pages").Parse(`
{{- define "head" -}}
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
	{{.Scripts}}
</head>
<body>
{{- end -}}

{{- define "add" -}}
{{template "head" .}}
<h1>{{.Title}}</h1>
<form id="addtag" method="post" action="/admin/categories">
	<div class="form-field term-name-wrap">
		<label for="tag-name">Name</label>
		<input name="name" id="tag-name" type="text" required>
	</div>
	<div class="form-field term-slug-wrap">
		<label for="tag-code">Code</label>
		<input name="code" id="tag-code" type="text" required>
	</div>
	{{.Fields}}
	<p class="submit"><button type="submit">Add new category</button></p>
</form>
</body>
</html>
{{- end -}}

{{- define "edit" -}}
{{template "head" .}}
<h1>{{.Title}}</h1>
<form id="edittag" method="post" action="/admin/categories/{{.Category.ID}}">
	<table class="form-table">
		<tr class="form-field term-name-wrap">
			<th scope="row"><label for="name">Name</label></th>
			<td><input name="name" id="name" type="text" value="{{.Category.Name}}" required></td>
		</tr>
		<tr class="form-field term-slug-wrap">
			<th scope="row"><label for="code">Code</label></th>
			<td><input name="code" id="code" type="text" value="{{.Category.Code}}" required></td>
		</tr>
		{{.Fields}}
	</table>
	<p class="submit"><button type="submit">Update</button></p>
</form>
</body>
</html>
{{- end -}}
`))

type page struct {
	Title    string
	Scripts  template.HTML
	Fields   template.HTML
	Category models.Category
}

// HandleAddForm renders the "add category" admin form.
func (h *CategoryHandler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	p := page{Title: "Add new category"}
	if h.fields != nil {
		fields, err := h.fields.AddFormFields(r.Context())
		if err != nil {
			h.log.ErrorContext(r.Context(), "render add category fields", "error", err)
			api.ErrorResponse(w, http.StatusInternalServerError, "Failed to render form")
			return
		}
		p.Fields = fields
		p.Scripts = h.fields.Scripts(r.Context())
	}
	h.renderPage(w, r, "add", p)
}

// HandleEditForm renders the "edit category" admin form.
func (h *CategoryHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	category, err := h.repo.GetCategoryByID(r.Context(), id)
	if err != nil {
		h.notFoundOrError(w, err)
		return
	}

	p := page{Title: "Edit category", Category: *category}
	if h.fields != nil {
		fields, err := h.fields.EditFormFields(r.Context(), *category)
		if err != nil {
			h.log.ErrorContext(r.Context(), "render edit category fields", "category_id", id, "error", err)
			api.ErrorResponse(w, http.StatusInternalServerError, "Failed to render form")
			return
		}
		p.Fields = fields
		p.Scripts = h.fields.Scripts(r.Context())
	}
	h.renderPage(w, r, "edit", p)
}

// HandleFormCreate stores a category posted from the add form.
func (h *CategoryHandler) HandleFormCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	code := strings.TrimSpace(r.PostForm.Get("code"))
	name := strings.TrimSpace(r.PostForm.Get("name"))
	if code == "" || name == "" {
		api.ErrorResponse(w, http.StatusBadRequest, "Missing code or name")
		return
	}

	category := &models.Category{Code: code, Name: name}
	if err := h.repo.CreateCategory(category); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	if err := h.runHooks(r.Context(), newTermEvent(category.ID, TermCreated), r.PostForm); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to save category fields")
		return
	}

	http.Redirect(w, r, editPath(category.ID), http.StatusSeeOther)
}

// HandleFormUpdate stores a category posted from the edit form.
func (h *CategoryHandler) HandleFormUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		api.ErrorResponse(w, http.StatusNotFound, "Category not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	category, err := h.repo.GetCategoryByID(r.Context(), id)
	if err != nil {
		h.notFoundOrError(w, err)
		return
	}
	if code := strings.TrimSpace(r.PostForm.Get("code")); code != "" {
		category.Code = code
	}
	if name := strings.TrimSpace(r.PostForm.Get("name")); name != "" {
		category.Name = name
	}
	if err := h.repo.UpdateCategory(r.Context(), category); err != nil {
		h.notFoundOrError(w, err)
		return
	}
	if err := h.runHooks(r.Context(), newTermEvent(category.ID, TermEdited), r.PostForm); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to save category fields")
		return
	}

	http.Redirect(w, r, editPath(category.ID), http.StatusSeeOther)
}

func (h *CategoryHandler) renderPage(w http.ResponseWriter, r *http.Request, name string, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, p); err != nil {
		h.log.ErrorContext(r.Context(), "render category page", "page", name, "error", err)
	}
}

func editPath(id uint) string {
	return "/admin/categories/" + strconv.FormatUint(uint64(id), 10) + "/edit"
}
