package crosssells

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mytheresa/category-cross-sells/app/screen"
	"github.com/mytheresa/category-cross-sells/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(meta *MockMetaRepo) *Editor {
	products := &MockProductFinder{Products: map[uint]models.Product{
		10: {ID: 10, Code: "PROD010", Name: "Silk Scarf"},
		20: {ID: 20, Code: "PROD020", Name: "Leather Belt"},
	}}
	return NewEditor(meta, products, nil)
}

func TestEditorEditFormFields(t *testing.T) {
	meta := &MockMetaRepo{CategoryMeta: map[uint]models.IDList{
		1: {20, 999, 10, 0},
	}}
	editor := newTestEditor(meta)

	out, err := editor.EditFormFields(context.Background(), models.Category{ID: 1, Code: "dresses"})

	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, `<tr class="form-field term-cross-sells-wrap">`)
	assert.Contains(t, html, `name="crosssell_ids[]"`)
	assert.Contains(t, html, `<option value="20" selected="selected">PROD020 – Leather Belt</option>`)
	assert.Contains(t, html, `<option value="10" selected="selected">PROD010 – Silk Scarf</option>`)
	assert.NotContains(t, html, `value="999"`, "unknown products are omitted")
	assert.NotContains(t, html, `value="0"`)
	assert.Less(t, strings.Index(html, `value="20"`), strings.Index(html, `value="10"`), "stored order is kept")
}

func TestEditorEditFormFieldsWithoutList(t *testing.T) {
	editor := newTestEditor(&MockMetaRepo{})

	out, err := editor.EditFormFields(context.Background(), models.Category{ID: 5})

	require.NoError(t, err)
	assert.Contains(t, string(out), `<select id="crosssell_ids"`)
	assert.NotContains(t, string(out), "<option")
}

func TestEditorEditFormFieldsMetaError(t *testing.T) {
	editor := newTestEditor(&MockMetaRepo{CategoryErr: map[uint]error{1: errors.New("db down")}})

	_, err := editor.EditFormFields(context.Background(), models.Category{ID: 1})

	assert.Error(t, err)
}

func TestEditorAddFormFields(t *testing.T) {
	editor := newTestEditor(&MockMetaRepo{})

	out, err := editor.AddFormFields(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(out), `<div class="form-field term-cross-sells-wrap">`)
	assert.Contains(t, string(out), `multiple="multiple"`)
}

func TestEditorScripts(t *testing.T) {
	editor := newTestEditor(&MockMetaRepo{})

	assert.Empty(t, editor.Scripts(context.Background()))
	assert.Empty(t, editor.Scripts(screen.WithScreen(context.Background(), screen.ProductEditor)))

	out := string(editor.Scripts(screen.WithScreen(context.Background(), screen.CategoryEditor)))
	assert.Contains(t, out, "<script>")
	assert.Regexp(t, `fetch\(\s*"\\?/admin\\?/products\\?/search"`, out)
	assert.Contains(t, out, "#crosssell_ids")
}
