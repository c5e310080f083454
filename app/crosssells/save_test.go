package crosssells

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/mytheresa/category-cross-sells/app/categories"
	"github.com/mytheresa/category-cross-sells/models"
	"github.com/stretchr/testify/assert"
)

func TestSaverCategorySaved(t *testing.T) {
	created := categories.TermEvent{TermID: 3, TaxonomyID: 3, Taxonomy: models.CategoryTaxonomy, Action: categories.TermCreated}
	edited := categories.TermEvent{TermID: 4, TaxonomyID: 4, Taxonomy: models.CategoryTaxonomy, Action: categories.TermEdited}

	testCases := []struct {
		name          string
		event         categories.TermEvent
		form          url.Values
		repo          *MockMetaRepo
		expectedErr   bool
		checkRepoCall func(t *testing.T, repo *MockMetaRepo)
	}{
		{
			name:  "Duplicates are kept at save time",
			event: edited,
			form:  url.Values{"crosssell_ids[]": {"5", "7", "5"}},
			repo:  &MockMetaRepo{},
			checkRepoCall: func(t *testing.T, repo *MockMetaRepo) {
				assert.Equal(t, 1, repo.SaveCalls)
				assert.Equal(t, uint(4), repo.SavedCategoryID)
				assert.Equal(t, models.CrossSellIDsKey, repo.SavedKey)
				assert.Equal(t, models.IDList{5, 7, 5}, repo.Saved)
			},
		},
		{
			name:  "Bare field name on create",
			event: created,
			form:  url.Values{"crosssell_ids": {"12", "x"}},
			repo:  &MockMetaRepo{},
			checkRepoCall: func(t *testing.T, repo *MockMetaRepo) {
				assert.Equal(t, uint(3), repo.SavedCategoryID)
				assert.Equal(t, models.IDList{12, 0}, repo.Saved)
			},
		},
		{
			name:  "Empty submission clears",
			event: edited,
			form:  url.Values{"crosssell_ids[]": {""}},
			repo:  &MockMetaRepo{},
			checkRepoCall: func(t *testing.T, repo *MockMetaRepo) {
				assert.Equal(t, 1, repo.SaveCalls)
				assert.NotNil(t, repo.Saved)
				assert.Empty(t, repo.Saved)
			},
		},
		{
			name:  "Missing field leaves the list alone",
			event: edited,
			form:  url.Values{"name": {"Dresses"}},
			repo:  &MockMetaRepo{},
			checkRepoCall: func(t *testing.T, repo *MockMetaRepo) {
				assert.Equal(t, 0, repo.SaveCalls)
			},
		},
		{
			name:  "Other taxonomies are ignored",
			event: categories.TermEvent{TermID: 9, TaxonomyID: 9, Taxonomy: "product_tag", Action: categories.TermEdited},
			form:  url.Values{"crosssell_ids[]": {"1"}},
			repo:  &MockMetaRepo{},
			checkRepoCall: func(t *testing.T, repo *MockMetaRepo) {
				assert.Equal(t, 0, repo.SaveCalls)
			},
		},
		{
			name:        "Store error is returned",
			event:       edited,
			form:        url.Values{"crosssell_ids[]": {"1"}},
			repo:        &MockMetaRepo{SaveErr: errors.New("insert failed")},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			saver := NewSaver(tc.repo, nil)

			// Act
			err := saver.CategorySaved(context.Background(), tc.event, tc.form)

			// Assert
			if tc.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, tc.repo)
			}
		})
	}
}
