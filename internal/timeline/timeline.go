// Package timeline folds a card's event log into time-in-list and
// time-with-member metrics.
//
// Events are ordered by occurrence time, ties broken by arrival sequence. A
// list segment opens whenever the card lands in a list and closes at the next
// landing. A member segment opens when a member is added and closes when a
// different member is added or that member is removed. Segments still open
// after the last event are closed at the last event's timestamp unless
// CloseOpenAt says otherwise.
package timeline

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"cardtracker.app/api/internal/model"
)

// ErrNoHistory is returned for a card without any stored events.
var ErrNoHistory = errors.New("no history for this card")

// Result is the aggregate over one card's events. TotalTime always equals the
// sum of TimePerList.
type Result struct {
	TotalTime          time.Duration
	TimePerList        map[string]time.Duration
	TimePerMember      map[string]time.Duration
	ListVisitCounts    map[string]int
	MoveCountsByMember map[string]map[string]int
}

type options struct {
	closeAt *time.Time
}

type Option func(*options)

// CloseOpenAt closes segments left open after the scan at t instead of at the
// last event. Passing the current time reports ongoing segments up to now.
func CloseOpenAt(t time.Time) Option {
	return func(o *options) {
		o.closeAt = &t
	}
}

// Aggregate computes metrics over events, which may be in any order.
// It returns ErrNoHistory when events is empty. Events missing the list or
// member they need are skipped.
func Aggregate(events []model.CardEvent, opts ...Option) (*Result, error) {
	if len(events) == 0 {
		return nil, ErrNoHistory
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	sorted := Sorted(events)
	result := newResult()

	var cur cursor
	for _, e := range sorted {
		var eff effect
		cur, eff = cur.step(e)
		result.apply(eff)
	}

	end := sorted[len(sorted)-1].OccurredAt
	if o.closeAt != nil {
		end = *o.closeAt
	}
	result.applyTrailing(cur.finish(end))

	for _, d := range result.TimePerList {
		result.TotalTime += d
	}
	return result, nil
}

// Sorted returns a copy of events ordered by OccurredAt, then Seq.
func Sorted(events []model.CardEvent) []model.CardEvent {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b model.CardEvent) int {
		if c := a.OccurredAt.Compare(b.OccurredAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})
	return sorted
}

func newResult() *Result {
	return &Result{
		TimePerList:        map[string]time.Duration{},
		TimePerMember:      map[string]time.Duration{},
		ListVisitCounts:    map[string]int{},
		MoveCountsByMember: map[string]map[string]int{},
	}
}

func (r *Result) apply(eff effect) {
	if eff.list != nil {
		r.TimePerList[eff.list.key] += eff.list.elapsed
	}
	if eff.member != nil {
		r.TimePerMember[eff.member.key] += eff.member.elapsed
	}
	if eff.visit == "" {
		return
	}
	r.ListVisitCounts[eff.visit]++
	if eff.mover != "" {
		if r.MoveCountsByMember[eff.mover] == nil {
			r.MoveCountsByMember[eff.mover] = map[string]int{}
		}
		r.MoveCountsByMember[eff.mover][eff.visit]++
	}
}

// applyTrailing credits segments closed after the scan. Zero-length
// trailing segments are left out so a final landing with nothing after it
// does not show up.
func (r *Result) applyTrailing(eff effect) {
	if eff.list != nil && eff.list.elapsed > 0 {
		r.TimePerList[eff.list.key] += eff.list.elapsed
	}
	if eff.member != nil && eff.member.elapsed > 0 {
		r.TimePerMember[eff.member.key] += eff.member.elapsed
	}
}
