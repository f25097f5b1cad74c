package collision

import "github.com/Carmen-Shannon/oxy-modalcam/engine/actor"

// WorldBuilderOption is a functional option for configuring a World.
type WorldBuilderOption func(w *world)

// WithActors registers initial actors in the world.
//
// Parameters:
//   - actors: the actors to add
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithActors(actors ...actor.Actor) WorldBuilderOption {
	return func(w *world) {
		for _, a := range actors {
			if a != nil {
				w.add(a)
			}
		}
	}
}
