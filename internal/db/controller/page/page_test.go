package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alshoaa/siteadmin/internal/db/dbtest"
	"github.com/alshoaa/siteadmin/internal/db/query"
	"github.com/alshoaa/siteadmin/internal/validation"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		name      string
		input     CreateInput
		wantField string
	}{
		{
			name:  "valid page",
			input: CreateInput{Title: "About", Content: "<p>About us</p>", Slug: "about"},
		},
		{
			name:      "empty title",
			input:     CreateInput{Title: " ", Content: "<p>x</p>", Slug: "about"},
			wantField: "title",
		},
		{
			name:      "empty content",
			input:     CreateInput{Title: "About", Slug: "about"},
			wantField: "content",
		},
		{
			name:      "empty slug",
			input:     CreateInput{Title: "About", Content: "<p>x</p>"},
			wantField: "slug",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ex := dbtest.Open(t)

			id, err := Create(context.Background(), ex, tc.input)

			if tc.wantField == "" {
				require.NoError(t, err)
				assert.Positive(t, id)

				return
			}

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
			assert.Zero(t, dbtest.Count(t, ex, "pages"))
		})
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	ex := dbtest.Open(t)

	firstID, err := Create(ctx, ex, CreateInput{Title: "About", Content: "<p>first</p>", Slug: "about"})
	require.NoError(t, err)

	_, err = Create(ctx, ex, CreateInput{Title: "Other", Content: "<p>second</p>", Slug: "about"})

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "slug", verr.Field)
	assert.Equal(t, validation.ReasonTaken, verr.Reason)

	p, err := GetBySlug(ctx, ex, "about")
	require.NoError(t, err)
	assert.Equal(t, firstID, p.ID)
	assert.Equal(t, "About", p.Title)
	assert.Equal(t, "<p>first</p>", p.Content)
	assert.Equal(t, int64(1), dbtest.Count(t, ex, "pages"))
}

func TestCreateDuplicateCaughtByIndex(t *testing.T) {
	ctx := context.Background()
	ex := dbtest.Open(t)

	// another writer takes the slug between the lookup and the insert
	dbtest.BeforeInsert(t, ex, "pages", func(tx *gorm.DB) {
		require.NoError(t, tx.Exec(insertPage, "Other", "<p>other</p>", "about").Error)
	})

	id, err := Create(ctx, ex, CreateInput{Title: "About", Content: "<p>x</p>", Slug: "about"})
	assert.Zero(t, id)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "slug", verr.Field)
	assert.Equal(t, validation.ReasonTaken, verr.Reason)
	require.NotErrorIs(t, err, query.ErrDuplicate)

	p, err := GetBySlug(ctx, ex, "about")
	require.NoError(t, err)
	assert.Equal(t, "Other", p.Title)
	assert.Equal(t, int64(1), dbtest.Count(t, ex, "pages"))
}

func TestContentIsNotSanitized(t *testing.T) {
	ctx := context.Background()
	ex := dbtest.Open(t)

	content := `  <h1 class="x">It's</h1>\n`
	id, err := Create(ctx, ex, CreateInput{Title: "Tom & Jerry", Content: content, Slug: "tom"})
	require.NoError(t, err)

	p, err := GetByID(ctx, ex, id)
	require.NoError(t, err)
	assert.Equal(t, content, p.Content)
	assert.Equal(t, "Tom &amp; Jerry", p.Title)
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	ex := dbtest.Open(t)

	_, err := GetBySlug(ctx, ex, "missing")
	require.ErrorIs(t, err, query.ErrNotFound)

	_, err = GetByID(ctx, ex, 99)
	require.ErrorIs(t, err, query.ErrNotFound)
}

func TestListAllOrderedByTitle(t *testing.T) {
	ctx := context.Background()
	ex := dbtest.Open(t)

	pages, err := ListAll(ctx, ex)
	require.NoError(t, err)
	assert.Empty(t, pages)

	for _, in := range []CreateInput{
		{Title: "Contact", Content: "c", Slug: "contact"},
		{Title: "About", Content: "a", Slug: "about"},
		{Title: "Blog", Content: "b", Slug: "blog"},
	} {
		_, err := Create(ctx, ex, in)
		require.NoError(t, err)
	}

	pages, err = ListAll(ctx, ex)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "About", pages[0].Title)
	assert.Equal(t, "Blog", pages[1].Title)
	assert.Equal(t, "Contact", pages[2].Title)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	ex := dbtest.Open(t)

	id, err := Create(ctx, ex, CreateInput{Title: "About", Content: "<p>old</p>", Slug: "about"})
	require.NoError(t, err)

	require.NoError(t, Update(ctx, ex, id, UpdateInput{Title: "About us", Content: "<p>new</p>"}))

	p, err := GetBySlug(ctx, ex, "about")
	require.NoError(t, err)
	assert.Equal(t, "About us", p.Title)
	assert.Equal(t, "<p>new</p>", p.Content)

	var verr *validation.Error
	err = Update(ctx, ex, id, UpdateInput{Title: "About us"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)

	err = Update(ctx, ex, id+1, UpdateInput{Title: "x", Content: "y"})
	require.ErrorIs(t, err, query.ErrNotFound)
}
