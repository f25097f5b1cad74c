package collision

import (
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/google/uuid"
)

// QueryParams carries per-query settings shared across a batch of sweeps.
// The ignore set only grows, so actors filtered by an earlier sweep stay
// invisible to every later sweep issued with the same params.
// Not safe for concurrent use; a batch belongs to a single caller.
type QueryParams struct {
	ignored []actor.Actor
	ids     map[uuid.UUID]struct{}
}

// NewQueryParams creates query params that ignore the given actors.
//
// Parameters:
//   - ignore: actors the queries must never report
//
// Returns:
//   - *QueryParams: the new params
func NewQueryParams(ignore ...actor.Actor) *QueryParams {
	p := &QueryParams{ids: make(map[uuid.UUID]struct{}, len(ignore))}
	for _, a := range ignore {
		p.AddIgnoredActor(a)
	}
	return p
}

// AddIgnoredActor adds an actor to the ignore set. Nil and duplicate actors are skipped.
//
// Parameters:
//   - a: the actor to ignore
func (p *QueryParams) AddIgnoredActor(a actor.Actor) {
	if a == nil {
		return
	}
	if _, ok := p.ids[a.ID()]; ok {
		return
	}
	p.ids[a.ID()] = struct{}{}
	p.ignored = append(p.ignored, a)
}

// IsIgnored reports whether the actor is in the ignore set.
//
// Parameters:
//   - a: the actor to check
//
// Returns:
//   - bool: true if queries must skip the actor
func (p *QueryParams) IsIgnored(a actor.Actor) bool {
	if p == nil || a == nil {
		return false
	}
	_, ok := p.ids[a.ID()]
	return ok
}

// IgnoredActors returns the ignore set in insertion order.
//
// Returns:
//   - []actor.Actor: a copy of the ignored actors
func (p *QueryParams) IgnoredActors() []actor.Actor {
	if p == nil {
		return nil
	}
	out := make([]actor.Actor, len(p.ignored))
	copy(out, p.ignored)
	return out
}
