package editor

import (
	"context"
	"log"

	"github.com/piwi3910/FurniLayout/internal/ingest"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
	"github.com/piwi3910/FurniLayout/internal/session"
)

// Pending is an in-flight automatic layout request, tagged with the floor it targets.
type Pending struct {
	Floor   model.FloorID
	Seq     uint64
	Request predictor.Request
	Dropped []model.CatalogEntry
}

// BeginAutoLayout validates the cart and marks a request in flight.
// An empty cart fails with model.ErrEmptyCart. A critical cart fails with
// *model.CapacityExceededError unless confirmed; once confirmed only the
// first MaxItems entries are sent and the rest are listed in Dropped.
func (e *Editor) BeginAutoLayout(confirmed bool) (*Pending, error) {
	if e.cart.Len() == 0 {
		return nil, model.ErrEmptyCart
	}
	if e.inFlight != nil {
		return nil, ErrIngestInFlight
	}
	capacity := e.Capacity()
	if capacity.Level == session.LevelCritical && !confirmed {
		return nil, capacity.Err()
	}

	kept, dropped := session.Truncate(e.cart.Items(), e.settings.MaxItems)
	e.seq++
	p := &Pending{
		Floor: e.manager.Active(),
		Seq:   e.seq,
		Request: predictor.Request{
			Items:         kept,
			RoomType:      e.roomType,
			FloorGeometry: e.manager.Geometry(),
		},
		Dropped: dropped,
	}
	if len(dropped) > 0 {
		log.Printf("[INGEST] cart truncated to %d of %d entries", len(kept), len(kept)+len(dropped))
	}
	e.inFlight = p
	return p, nil
}

// CancelAutoLayout abandons the pending request. Its result will be discarded.
func (e *Editor) CancelAutoLayout() { e.inFlight = nil }

// CompleteAutoLayout applies a predictor result. Results for a superseded
// request or a floor that is no longer active return ErrStaleResult and
// change nothing. A predictor error clears the in-flight flag and is
// returned as is, also without touching the floor.
func (e *Editor) CompleteAutoLayout(p *Pending, resp predictor.Response, err error) (ingest.Summary, error) {
	if p == nil || e.inFlight == nil || e.inFlight.Seq != p.Seq {
		log.Printf("[INGEST] discarding superseded result")
		return ingest.Summary{}, ErrStaleResult
	}
	e.inFlight = nil
	if p.Floor != e.manager.Active() {
		log.Printf("[INGEST] discarding result for floor %d (active %d)", p.Floor, e.manager.Active())
		return ingest.Summary{}, ErrStaleResult
	}
	if err != nil {
		return ingest.Summary{}, err
	}

	res := ingest.Process(resp, p.Request.Items, e.settings)

	if e.manager.Store().Len() > 0 {
		e.history.Push(e.snapshot("Auto layout"))
	}
	e.manager.Store().Replace(res.Items)
	e.manager.SetCart(p.Request.Items)
	e.manager.Commit()
	e.selected = ""
	e.machine.Cancel()

	sum := ingest.Summarize(p.Floor, resp, res, p.Dropped)
	log.Printf("[INGEST] floor %d: %d placed, %d removed, %d skipped, %d overlap(s) left",
		p.Floor, sum.Placed, len(sum.Removed), len(sum.Skipped), sum.CollisionCount)
	return sum, nil
}

// AutoLayout runs the whole request synchronously against pr.
func (e *Editor) AutoLayout(ctx context.Context, pr predictor.Predictor, confirmed bool) (ingest.Summary, error) {
	p, err := e.BeginAutoLayout(confirmed)
	if err != nil {
		return ingest.Summary{}, err
	}
	resp, err := pr.Suggest(ctx, p.Request)
	return e.CompleteAutoLayout(p, resp, err)
}
