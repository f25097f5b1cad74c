package actor

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/google/uuid"
)

// TagIgnoreCameraCollision marks an actor that camera probes must pass through.
const TagIgnoreCameraCollision = "IgnoreCameraCollision"

// Kind classifies what an actor is for collision purposes.
type Kind int

const (
	// KindSolid is ordinary world geometry.
	KindSolid Kind = iota
	// KindCameraBlockingVolume is an invisible volume that only exists to block cameras.
	KindCameraBlockingVolume
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "Solid"
	case KindCameraBlockingVolume:
		return "CameraBlockingVolume"
	default:
		return "Unknown"
	}
}

// Channel is a collision channel that queries are issued against.
type Channel int

const (
	ChannelVisibility Channel = iota
	ChannelCamera
	ChannelPawn
)

// Collider is an axis-aligned box centered on the actor's location.
type Collider struct {
	// HalfExtents is half the box size along X, Y and Z.
	HalfExtents common.Vec3
}

// Controller is whatever possesses a pawn (a player or an AI brain).
type Controller interface {
	// Name returns a human-readable identifier for diagnostics.
	Name() string
}

type actorImpl struct {
	mu *sync.Mutex

	id       uuid.UUID
	name     string
	kind     Kind
	location common.Vec3
	rotation common.Rotator
	tags     []string

	collider   *Collider
	responses  map[Channel]bool
	controller Controller
}

// Actor defines the interface for an object placed in the world.
// Actors carry a transform, optional collision, classification tags and an optional controller.
// Thread-safe for concurrent access.
type Actor interface {
	// ID returns the actor's unique identifier.
	//
	// Returns:
	//   - uuid.UUID: the actor ID
	ID() uuid.UUID

	// Name returns the actor's display name.
	//
	// Returns:
	//   - string: the actor name
	Name() string

	// Kind returns the actor's collision classification.
	//
	// Returns:
	//   - Kind: solid geometry or camera blocking volume
	Kind() Kind

	// Location returns the actor's world-space location.
	//
	// Returns:
	//   - common.Vec3: the location
	Location() common.Vec3

	// SetLocation moves the actor.
	//
	// Parameters:
	//   - loc: the new world-space location
	SetLocation(loc common.Vec3)

	// Rotation returns the actor's world-space orientation.
	//
	// Returns:
	//   - common.Rotator: the rotation in degrees
	Rotation() common.Rotator

	// SetRotation re-orients the actor.
	//
	// Parameters:
	//   - rot: the new rotation in degrees
	SetRotation(rot common.Rotator)

	// Forward returns the unit forward vector derived from the actor's rotation.
	//
	// Returns:
	//   - common.Vec3: the forward direction
	Forward() common.Vec3

	// HasTag reports whether the actor carries the given tag.
	//
	// Parameters:
	//   - tag: the tag to look for
	//
	// Returns:
	//   - bool: true if present
	HasTag(tag string) bool

	// AddTag attaches a tag to the actor. Adding an existing tag is a no-op.
	//
	// Parameters:
	//   - tag: the tag to add
	AddTag(tag string)

	// Tags returns a copy of the actor's tags.
	//
	// Returns:
	//   - []string: the tags in insertion order
	Tags() []string

	// Collider returns the actor's collision box, or nil when the actor has no collision.
	//
	// Returns:
	//   - *Collider: a copy of the collider or nil
	Collider() *Collider

	// SimpleCollisionHalfHeight returns the vertical half-extent of the actor's collision,
	// or zero when the actor has no collision.
	//
	// Returns:
	//   - float32: the half height
	SimpleCollisionHalfHeight() float32

	// BlocksChannel reports whether queries on the channel collide with this actor.
	// Actors without a collider never block.
	//
	// Parameters:
	//   - ch: the collision channel
	//
	// Returns:
	//   - bool: true if the actor blocks the channel
	BlocksChannel(ch Channel) bool

	// SetChannelResponse sets whether queries on the channel collide with this actor.
	//
	// Parameters:
	//   - ch: the collision channel
	//   - block: true to block, false to let queries pass through
	SetChannelResponse(ch Channel, block bool)

	// Controller returns the controller possessing this actor, or nil when it is not a pawn.
	//
	// Returns:
	//   - Controller: the possessing controller or nil
	Controller() Controller

	// SetController possesses the actor with the given controller. Pass nil to unpossess.
	//
	// Parameters:
	//   - c: the controller
	SetController(c Controller)
}

var _ Actor = &actorImpl{}

// NewActor creates a new Actor configured with the given options.
// A random ID is assigned unless WithID is supplied. Actors block every channel
// by default once a collider is set.
//
// Parameters:
//   - options: functional options to configure the actor
//
// Returns:
//   - Actor: the newly created actor
func NewActor(options ...ActorBuilderOption) Actor {
	a := &actorImpl{
		mu: &sync.Mutex{},
		id: uuid.New(),
		responses: map[Channel]bool{
			ChannelVisibility: true,
			ChannelCamera:     true,
			ChannelPawn:       true,
		},
	}
	for _, option := range options {
		option(a)
	}
	a.name = common.Coalesce(a.name, a.kind.String()+"_"+a.id.String()[:8])
	return a
}

func (a *actorImpl) ID() uuid.UUID {
	return a.id
}

func (a *actorImpl) Name() string {
	return a.name
}

func (a *actorImpl) Kind() Kind {
	return a.kind
}

func (a *actorImpl) Location() common.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

func (a *actorImpl) SetLocation(loc common.Vec3) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.location = loc
}

func (a *actorImpl) Rotation() common.Rotator {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rotation
}

func (a *actorImpl) SetRotation(rot common.Rotator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rotation = rot
}

func (a *actorImpl) Forward() common.Vec3 {
	return a.Rotation().Vector()
}

func (a *actorImpl) HasTag(tag string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Contains(a.tags, tag)
}

func (a *actorImpl) AddTag(tag string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !slices.Contains(a.tags, tag) {
		a.tags = append(a.tags, tag)
	}
}

func (a *actorImpl) Tags() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.tags)
}

func (a *actorImpl) Collider() *Collider {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.collider == nil {
		return nil
	}
	c := *a.collider
	return &c
}

func (a *actorImpl) SimpleCollisionHalfHeight() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.collider == nil {
		return 0
	}
	return a.collider.HalfExtents[2]
}

func (a *actorImpl) BlocksChannel(ch Channel) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.collider != nil && a.responses[ch]
}

func (a *actorImpl) SetChannelResponse(ch Channel, block bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[ch] = block
}

func (a *actorImpl) Controller() Controller {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.controller
}

func (a *actorImpl) SetController(c Controller) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.controller = c
}
