package scene

import (
	"fmt"

	"github.com/solar-nl/prism/pkg/math"
)

// EvalContext carries the per-tick evaluation inputs. It is threaded
// explicitly through traversal so evaluation has no dependency on
// process-wide state.
type EvalContext struct {
	// Time is the query time in clip-normalized units.
	Time float32
}

// Evaluate recomputes every node's results array and world transforms for
// the given context, then resolves aim targets against the final world
// positions. The recomputation is complete and unconditional each tick:
// virtually every authored parameter animates on virtually every frame, so
// dirty tracking would add bookkeeping without saving work, and skipping
// it keeps evaluation exactly reproducible.
//
// Traversal is strictly pre-order depth-first: a child never observes its
// parent's transform before the parent has computed it, and the target
// pass never runs before all world positions exist.
func (s *Scene) Evaluate(ctx EvalContext) error {
	identity := math.Identity()
	for _, r := range s.roots {
		if err := s.evalNode(r, identity, ctx); err != nil {
			return err
		}
	}
	s.resolveTargets()
	return nil
}

func (s *Scene) evalNode(idx int, parent math.Mat4, ctx EvalContext) error {
	n := &s.nodes[idx]

	// Defaults first, so slots without a curve never read stale or
	// uninitialized values.
	n.Results = defaultResults(n.Kind)
	n.Rotation = math.QuatIdentity()

	if len(n.Clips) > 0 {
		clip := &n.Clips[n.active]
		for _, b := range clip.Bindings {
			if b.Slot == SlotRotation {
				q, err := b.Curve.Rotation(ctx.Time)
				if err != nil {
					return fmt.Errorf("node %q clip %q rotation: %w", n.Name, clip.Name, err)
				}
				n.Rotation = q
				continue
			}
			v, err := b.Curve.Value(ctx.Time)
			if err != nil {
				return fmt.Errorf("node %q clip %q slot %s: %w", n.Name, clip.Name, b.Slot, err)
			}
			n.Results[b.Slot] = v
		}
	}

	translation := n.Translation()
	local := math.TRS(translation, n.Rotation, n.ScaleVec())
	world := parent.Mul(local)

	n.PrevWorld = n.World
	n.World = world

	// The node's origin under the parent transform only: its own rotation
	// and scale must not move where it sits for lighting and targeting.
	n.WorldPos = parent.TransformPoint(translation)

	for _, c := range n.children {
		if err := s.evalNode(c, world, ctx); err != nil {
			return err
		}
	}
	return nil
}
