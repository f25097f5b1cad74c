package scene

import (
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/camera"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithActors adds initial actors to the scene and its collision world.
// Nil actors are skipped.
//
// Parameters:
//   - actors: the actors to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActors(actors ...actor.Actor) SceneBuilderOption {
	return func(s *scene) {
		for _, a := range actors {
			if a != nil {
				s.add(a)
			}
		}
	}
}

// WithCameras attaches initial cameras to the scene.
//
// Parameters:
//   - cams: the cameras to attach
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCameras(cams ...camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		for _, c := range cams {
			if c != nil {
				s.cameras = append(s.cameras, c)
			}
		}
	}
}

// WithUpdateWorkers sets the number of worker goroutines used to update cameras in parallel.
// Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: the number of update workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.updateWorkers = n
	}
}

// WithVerbose enables construction logging.
//
// Parameters:
//   - verbose: true to log
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithVerbose(verbose bool) SceneBuilderOption {
	return func(s *scene) {
		s.verbose = verbose
	}
}
