package formats

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/solar-nl/prism/internal/engine/scene"
	"github.com/solar-nl/prism/pkg/anim"
	"github.com/solar-nl/prism/pkg/math"
)

var interpByName = map[string]anim.Interp{
	"step":   anim.InterpStep,
	"linear": anim.InterpLinear,
	"cubic":  anim.InterpCatmullRom,
	"bezier": anim.InterpBezier,
}

// Build validates the document and converts it into a runtime scene.
// Splines are checked here, at load time, so corrupt authored content is
// reported against the document instead of failing mid-evaluation.
func (d *SceneDoc) Build(logger *zap.Logger) (*scene.Scene, error) {
	sc := scene.New(logger)
	indexByName := make(map[string]int, len(d.Nodes))

	for ni := range d.Nodes {
		nd := &d.Nodes[ni]
		if nd.Name == "" {
			return nil, fmt.Errorf("formats: node %d has no name", ni)
		}
		if _, dup := indexByName[nd.Name]; dup {
			return nil, fmt.Errorf("formats: duplicate node name %q", nd.Name)
		}

		kind, ok := scene.KindByName(nd.Kind)
		if !ok {
			return nil, fmt.Errorf("formats: node %q: unknown kind %q", nd.Name, nd.Kind)
		}

		parent := scene.NoParent
		if nd.Parent != "" {
			pi, ok := indexByName[nd.Parent]
			if !ok {
				return nil, fmt.Errorf("formats: node %q: parent %q not declared before it", nd.Name, nd.Parent)
			}
			parent = pi
		}

		clips, err := buildClips(nd)
		if err != nil {
			return nil, err
		}

		idx, err := sc.AddNode(parent, scene.Node{
			Name:  nd.Name,
			Kind:  kind,
			Clips: clips,
		})
		if err != nil {
			return nil, fmt.Errorf("formats: node %q: %w", nd.Name, err)
		}
		indexByName[nd.Name] = idx

		if nd.Clip != "" {
			ci := clipIndexByName(clips, nd.Clip)
			if ci < 0 {
				return nil, fmt.Errorf("formats: node %q: unknown clip %q", nd.Name, nd.Clip)
			}
			sc.SetActiveClip(idx, ci)
		}
	}

	// Targets may point forward in the document, so resolve them after
	// all nodes exist.
	for _, nd := range d.Nodes {
		if nd.Target == "" {
			continue
		}
		ti, ok := indexByName[nd.Target]
		if !ok {
			return nil, fmt.Errorf("formats: node %q: unknown target %q", nd.Name, nd.Target)
		}
		if err := sc.SetTarget(indexByName[nd.Name], ti); err != nil {
			return nil, fmt.Errorf("formats: node %q: %w", nd.Name, err)
		}
	}

	return sc, nil
}

func buildClips(nd *NodeDoc) ([]scene.Clip, error) {
	clips := make([]scene.Clip, 0, len(nd.Clips))
	for _, cd := range nd.Clips {
		clip := scene.Clip{Name: cd.Name}
		for ci, curve := range cd.Curves {
			slot, ok := scene.SlotByName(curve.Slot)
			if !ok {
				return nil, fmt.Errorf("formats: node %q clip %q: unknown slot %q", nd.Name, cd.Name, curve.Slot)
			}
			mode, ok := interpByName[curve.Mode]
			if !ok {
				return nil, fmt.Errorf("formats: node %q clip %q: unknown mode %q", nd.Name, cd.Name, curve.Mode)
			}

			spline := &anim.Spline{Mode: mode, Loop: curve.Loop}
			for _, kd := range curve.Keys {
				key := anim.Keyframe{
					Time:     kd.Time,
					Value:    kd.Value,
					Rotation: math.QuatIdentity(),
				}
				if kd.Rotation != nil {
					key.Rotation = math.Quat{
						X: kd.Rotation[0],
						Y: kd.Rotation[1],
						Z: kd.Rotation[2],
						W: kd.Rotation[3],
					}
				}
				if kd.In != nil {
					key.InTime = kd.In[0]
					key.InValue = kd.In[1]
				}
				if kd.Out != nil {
					key.OutTime = kd.Out[0]
					key.OutValue = kd.Out[1]
				}
				spline.Keys = append(spline.Keys, key)
			}

			if err := spline.Validate(); err != nil {
				return nil, fmt.Errorf("formats: node %q clip %q curve %d (%s): %w",
					nd.Name, cd.Name, ci, curve.Slot, err)
			}
			clip.Bindings = append(clip.Bindings, scene.Binding{Slot: slot, Curve: spline})
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

func clipIndexByName(clips []scene.Clip, name string) int {
	for i := range clips {
		if clips[i].Name == name {
			return i
		}
	}
	return -1
}
