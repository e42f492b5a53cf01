package daemon

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/alshoaa/siteadmin/internal/db/controller/page"
	"github.com/alshoaa/siteadmin/internal/db/query"
)

const (
	seedTitle   = "Home"
	seedSlug    = "home"
	seedContent = "<h1>Welcome</h1><p>This page was created in dev mode.</p>"
)

// seed creates a home page when no pages exist yet.
func seed(ctx context.Context, ex *query.Executor) {
	pages, err := page.ListAll(ctx, ex)
	if err != nil || len(pages) > 0 {
		return
	}

	id, err := page.Create(ctx, ex, page.CreateInput{
		Title:   seedTitle,
		Content: seedContent,
		Slug:    seedSlug,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to seed home page")
		return
	}

	log.Info().Int64("page_id", id).Msg("seeded home page")
}
