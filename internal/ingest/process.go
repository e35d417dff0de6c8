package ingest

import (
	"log"

	"github.com/piwi3910/FurniLayout/internal/engine"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
)

// Result is the outcome of running the ingestion pipeline on one response.
type Result struct {
	Items   []model.PlacedItem
	Skipped []*model.InvalidGeometryError
	Fix     engine.FixResult
	Report  engine.Report

	// Overflow holds suggestions past MaxItems. They are never placed.
	Overflow []predictor.Suggestion
}

// Process normalizes resp, repairs true overlaps when there are any, and
// annotates every item from the final validation pass. Only the first
// MaxItems suggestions are considered.
func Process(resp predictor.Response, cart []model.CatalogEntry, s model.LayoutSettings) Result {
	data := resp.Data
	var overflow []predictor.Suggestion
	if s.MaxItems > 0 && len(data) > s.MaxItems {
		overflow = data[s.MaxItems:]
		data = data[:s.MaxItems]
		log.Printf("[INGEST] ignoring %d suggestion(s) over the limit of %d", len(overflow), s.MaxItems)
	}

	items, skipped := Normalize(data, cart, s)
	for _, sk := range skipped {
		log.Printf("[INGEST] skipped suggestion: %v", sk)
	}

	res := Result{Skipped: skipped, Overflow: overflow}
	report := engine.Validate(items, s.MinSpacing)
	if !report.Clean() {
		res.Fix = engine.New(s).Fix(items)
		items = res.Fix.Items
		report = engine.Validate(items, s.MinSpacing)
	} else {
		res.Fix = engine.FixResult{Items: items}
	}

	res.Items = engine.Annotate(items, s.MinSpacing)
	if res.Items == nil {
		res.Items = []model.PlacedItem{}
	}
	res.Report = report
	return res
}
