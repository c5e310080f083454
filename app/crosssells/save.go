package crosssells

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/mytheresa/category-cross-sells/app/categories"
	"github.com/mytheresa/category-cross-sells/models"
)

// FieldName is the form field carrying the selected product IDs.
const FieldName = "crosssell_ids"

// CategoryMetaWriter persists category metadata.
type CategoryMetaWriter interface {
	SetCategoryMeta(ctx context.Context, categoryID uint, key string, value models.IDList) error
}

// Saver stores a category's default cross-sells when its form is saved.
type Saver struct {
	store CategoryMetaWriter
	log   *slog.Logger
}

func NewSaver(store CategoryMetaWriter, log *slog.Logger) *Saver {
	if log == nil {
		log = slog.Default()
	}
	return &Saver{store: store, log: log}
}

var _ categories.SaveHook = (*Saver)(nil)

// CategorySaved implements categories.SaveHook. When the submission carries
// the cross-sell field the stored list is overwritten, duplicates included;
// a field with no values clears it.
func (s *Saver) CategorySaved(ctx context.Context, ev categories.TermEvent, form url.Values) error {
	if ev.Taxonomy != models.CategoryTaxonomy {
		return nil
	}

	values, ok := submitted(form)
	if !ok {
		return nil
	}

	ids := make(models.IDList, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		ids = append(ids, coerceID(v))
	}

	if err := s.store.SetCategoryMeta(ctx, ev.TermID, models.CrossSellIDsKey, ids); err != nil {
		return fmt.Errorf("save cross-sells for category %d: %w", ev.TermID, err)
	}

	categorySavesTotal.WithLabelValues(string(ev.Action)).Inc()
	s.log.InfoContext(ctx, "category cross-sells saved",
		"category_id", ev.TermID, "action", ev.Action, "count", len(ids))
	return nil
}

// submitted returns the posted values for the field, accepting both the
// bracketed multi-select name and the bare one.
func submitted(form url.Values) ([]string, bool) {
	if v, ok := form[FieldName+"[]"]; ok {
		return v, true
	}
	v, ok := form[FieldName]
	return v, ok
}
