package scene

import (
	"fmt"

	"go.uber.org/zap"
)

// NoParent marks a node parented to the synthetic scene root.
const NoParent = -1

// NoTarget marks a node without an aim target.
const NoTarget = -1

// Scene owns the node arena. The synthetic scene root is implicit: nodes
// with Parent == NoParent inherit the identity transform. Topology is
// fixed after construction; only results and transforms change at runtime.
//
// Precondition: the hierarchy must be acyclic. Traversal does not guard
// against a node being its own descendant; enforcing that is the authoring
// tool's job (AddNode's parent-before-child ordering makes cycles
// inexpressible when scenes are built front to back).
type Scene struct {
	nodes []Node
	roots []int
	log   *zap.Logger
}

// New creates an empty scene. logger may be nil.
func New(logger *zap.Logger) *Scene {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scene{log: logger}
}

// AddNode appends a node to the arena and links it under parent (NoParent
// for a root child). The parent must already exist, so documents are built
// in topological order.
func (s *Scene) AddNode(parent int, n Node) (int, error) {
	if parent != NoParent && (parent < 0 || parent >= len(s.nodes)) {
		return 0, fmt.Errorf("scene: parent index %d out of range (have %d nodes)", parent, len(s.nodes))
	}
	n.Parent = parent
	n.Target = NoTarget
	n.Results = defaultResults(n.Kind)

	idx := len(s.nodes)
	s.nodes = append(s.nodes, n)
	if parent == NoParent {
		s.roots = append(s.roots, idx)
	} else {
		s.nodes[parent].children = append(s.nodes[parent].children, idx)
	}
	return idx, nil
}

// SetTarget points node at target for aim-constraint resolution.
func (s *Scene) SetTarget(node, target int) error {
	if node < 0 || node >= len(s.nodes) {
		return fmt.Errorf("scene: node index %d out of range", node)
	}
	if target != NoTarget && (target < 0 || target >= len(s.nodes)) {
		return fmt.Errorf("scene: target index %d out of range", target)
	}
	s.nodes[node].Target = target
	return nil
}

// SetActiveClip selects which of the node's clips is evaluated each tick.
// An out-of-range selection is a non-fatal authoring mistake and clamps to
// the nearest valid clip instead of failing.
func (s *Scene) SetActiveClip(node, clip int) {
	if node < 0 || node >= len(s.nodes) {
		return
	}
	n := &s.nodes[node]
	if len(n.Clips) == 0 {
		n.active = 0
		return
	}
	clamped := clip
	if clamped < 0 {
		clamped = 0
	} else if clamped >= len(n.Clips) {
		clamped = len(n.Clips) - 1
	}
	if clamped != clip {
		s.log.Warn("clip selection out of range, clamping",
			zap.String("node", n.Name),
			zap.Int("requested", clip),
			zap.Int("clamped", clamped),
		)
	}
	n.active = clamped
}

// Node returns the node at index i. The returned pointer stays valid for
// the scene's lifetime; topology fields must not be mutated through it.
func (s *Scene) Node(i int) *Node {
	return &s.nodes[i]
}

// Len returns the number of nodes in the arena.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Lookup finds a node index by name, or -1.
func (s *Scene) Lookup(name string) int {
	for i := range s.nodes {
		if s.nodes[i].Name == name {
			return i
		}
	}
	return -1
}
