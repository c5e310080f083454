package categories

import (
	"context"
	"html/template"
	"net/url"

	"github.com/mytheresa/category-cross-sells/models"
)

// TermAction tells whether a term was just created or edited.
type TermAction string

const (
	TermCreated TermAction = "created"
	TermEdited  TermAction = "edited"
)

// TermEvent is published after a category has been stored. Categories are
// the only taxonomy this service owns, so TaxonomyID equals TermID.
type TermEvent struct {
	TermID     uint
	TaxonomyID uint
	Taxonomy   string
	Action     TermAction
}

// SaveHook runs after a category save with the submitted form values.
type SaveHook interface {
	CategorySaved(ctx context.Context, ev TermEvent, form url.Values) error
}

// FormFields contributes extra inputs to the category admin forms.
type FormFields interface {
	AddFormFields(ctx context.Context) (template.HTML, error)
	EditFormFields(ctx context.Context, category models.Category) (template.HTML, error)
	Scripts(ctx context.Context) template.HTML
}

func newTermEvent(id uint, action TermAction) TermEvent {
	return TermEvent{
		TermID:     id,
		TaxonomyID: id,
		Taxonomy:   models.CategoryTaxonomy,
		Action:     action,
	}
}
