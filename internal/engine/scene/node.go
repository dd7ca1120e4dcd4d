package scene

import (
	"github.com/solar-nl/prism/pkg/anim"
	"github.com/solar-nl/prism/pkg/math"
)

// NodeKind is the closed set of node behavior variants.
type NodeKind uint8

const (
	KindObject NodeKind = iota
	KindLight
	KindCamera
	KindEmitter
)

// String returns the wire name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	case KindEmitter:
		return "emitter"
	default:
		return "object"
	}
}

// KindByName maps a wire name back to a node kind.
func KindByName(name string) (NodeKind, bool) {
	switch name {
	case "object", "":
		return KindObject, true
	case "light":
		return KindLight, true
	case "camera":
		return KindCamera, true
	case "emitter":
		return KindEmitter, true
	}
	return KindObject, false
}

// Binding attaches one spline to one parameter slot.
type Binding struct {
	Slot  Slot
	Curve *anim.Spline
}

// Clip is a named bundle of slot bindings evaluated together for one node.
// Clips are immutable authored content; a node may own several (alternate
// animation states) but evaluates exactly one per tick.
type Clip struct {
	Name     string
	Bindings []Binding
}

// Node is one hierarchy entity. Relations are arena indices into the
// owning Scene, never pointers: parent and target are node indices (-1 for
// none), children are indices in traversal order. Results, Rotation and
// both world transforms are outputs, fully recomputed every tick.
type Node struct {
	Name   string
	Kind   NodeKind
	Parent int
	Target int

	Clips  []Clip
	active int

	children []int

	// Results is the semantic parameter array, indexed by Slot.
	Results [SlotCount]float32
	// Rotation is the resolved local rotation for this tick.
	Rotation math.Quat
	// World is the accumulated transform of this tick; PrevWorld the one
	// from the tick before, retained for motion-vector reconstruction.
	World     math.Mat4
	PrevWorld math.Mat4
	// WorldPos is the node origin under the parent's transform only; the
	// node's own rotation and scale do not move where it sits for
	// lighting and targeting purposes.
	WorldPos math.Vec3
}

// ActiveClip returns the index of the clip evaluated each tick.
func (n *Node) ActiveClip() int {
	return n.active
}

// Children returns the node's child indices. The slice is owned by the
// scene and must not be mutated.
func (n *Node) Children() []int {
	return n.children
}

// Translation reads the local translation slots.
func (n *Node) Translation() math.Vec3 {
	return math.Vec3{X: n.Results[SlotPosX], Y: n.Results[SlotPosY], Z: n.Results[SlotPosZ]}
}

// ScaleVec reads the local scale slots.
func (n *Node) ScaleVec() math.Vec3 {
	return math.Vec3{X: n.Results[SlotScaleX], Y: n.Results[SlotScaleY], Z: n.Results[SlotScaleZ]}
}

// AimDirection reads the resolved aim-direction slots.
func (n *Node) AimDirection() math.Vec3 {
	return math.Vec3{X: n.Results[SlotAimX], Y: n.Results[SlotAimY], Z: n.Results[SlotAimZ]}
}
