// Startup pipeline: load the three datasets and build the data context.
package main

import (
	"log"

	"github.com/mesh-intelligence/mortalidash/internal/dataset"
	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
	"github.com/mesh-intelligence/mortalidash/pkg/types"
)

// buildContext loads the three source tables and runs the join pipeline.
// Missing or unreadable files degrade to empty tables inside the loader,
// so this always succeeds; the diagnostics land on stderr.
func buildContext(cfg types.Config) *pipeline.Context {
	mortality := dataset.Load(cfg.MortalityPath())
	geography := dataset.Load(cfg.GeographyPath())
	causes := dataset.Load(cfg.CausesPath())

	log.Printf("loaded mortality: %d rows, geography: %d rows, causes: %d rows",
		mortality.Len(), geography.Len(), causes.Len())

	ctx := pipeline.Build(mortality, geography, causes)
	log.Printf("canonical table: %d records, %d departments",
		len(ctx.Records), len(ctx.Departments))
	return ctx
}
