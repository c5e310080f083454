package crosssells

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/mytheresa/category-cross-sells/app/categories"
	"github.com/mytheresa/category-cross-sells/app/screen"
	"github.com/mytheresa/category-cross-sells/models"
)

// ProductFinder loads products for display.
type ProductFinder interface {
	GetByID(ctx context.Context, id uint) (*models.Product, error)
}

// SearchPath is the admin endpoint the field's script queries for products.
const SearchPath = "/admin/products/search"

var fieldTemplates = template.Must(template.New("fields").Parse(`
{{- define "select" -}}
<select id="crosssell_ids" name="crosssell_ids[]" class="ajax_chosen_select_products" multiple="multiple" data-placeholder="Search for a product&hellip;">
{{- range .}}
	<option value="{{.ID}}" selected="selected">{{.Label}}</option>
{{- end}}
</select>
<span class="help_tip" title="Cross-sells are products which you promote in the cart, based on the current product.">?</span>
{{- end -}}

{{- define "add" -}}
<div class="form-field term-cross-sells-wrap">
	<label for="crosssell_ids">Cross-Sells</label>
	{{template "select" .}}
	<p>The default cross-sells for products in this category.</p>
</div>
{{- end -}}

{{- define "edit" -}}
<tr class="form-field term-cross-sells-wrap">
	<th scope="row" valign="top"><label for="crosssell_ids">Cross-Sells</label></th>
	<td>
		{{template "select" .}}
		<p class="description">The default cross-sells for products in this category.</p>
	</td>
</tr>
{{- end -}}

{{- define "scripts" -}}
<script>
document.addEventListener("DOMContentLoaded", function () {
	var select = document.querySelector("select.ajax_chosen_select_products");
	if (!select) {
		return;
	}
	var input = document.createElement("input");
	input.type = "search";
	input.placeholder = select.dataset.placeholder;
	select.parentNode.insertBefore(input, select);
	var timer;
	input.addEventListener("input", function () {
		clearTimeout(timer);
		timer = setTimeout(function () {
			if (input.value.length < 2) {
				return;
			}
			fetch({{.}} + "?term=" + encodeURIComponent(input.value), {credentials: "same-origin"})
				.then(function (res) { return res.json(); })
				.then(function (found) {
					Object.keys(found).forEach(function (id) {
						if (select.querySelector('option[value="' + id + '"]')) {
							return;
						}
						select.add(new Option(found[id], id, false, false));
					});
				});
		}, 100);
	});
});
</script>
<style>
	#crosssell_ids {
		width: 90% !important;
	}
</style>
{{- end -}}
`))

type option struct {
	ID    int64
	Label string
}

// Editor renders the default cross-sells field on the category forms.
type Editor struct {
	meta     CategoryMetaReader
	products ProductFinder
	log      *slog.Logger
}

func NewEditor(meta CategoryMetaReader, products ProductFinder, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{meta: meta, products: products, log: log}
}

var _ categories.FormFields = (*Editor)(nil)

// AddFormFields renders the field for the "add category" form.
func (e *Editor) AddFormFields(ctx context.Context) (template.HTML, error) {
	return render("add", []option{})
}

// EditFormFields renders the field for the "edit category" form with the
// category's stored products preselected.
func (e *Editor) EditFormFields(ctx context.Context, category models.Category) (template.HTML, error) {
	ids, err := e.meta.GetCategoryMeta(ctx, category.ID, models.CrossSellIDsKey)
	if err != nil {
		return "", fmt.Errorf("load cross-sells for category %d: %w", category.ID, err)
	}
	opts, err := e.options(ctx, ids)
	if err != nil {
		return "", err
	}
	return render("edit", opts)
}

// Scripts returns the product search script, only on the category screen.
func (e *Editor) Scripts(ctx context.Context) template.HTML {
	if !screen.Is(ctx, screen.CategoryEditor) {
		return ""
	}
	out, err := render("scripts", SearchPath)
	if err != nil {
		e.log.ErrorContext(ctx, "render cross-sell scripts", "error", err)
		return ""
	}
	return out
}

// options resolves stored IDs to labels. IDs that no longer resolve to a
// product are left out.
func (e *Editor) options(ctx context.Context, ids models.IDList) ([]option, error) {
	opts := make([]option, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		p, err := e.products.GetByID(ctx, uint(id))
		if errors.Is(err, models.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load product %d: %w", id, err)
		}
		opts = append(opts, option{ID: id, Label: p.FormattedName()})
	}
	return opts, nil
}

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fieldTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
