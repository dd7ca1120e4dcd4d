// Package scene holds the runtime node hierarchy and drives it from
// authored animation clips: every evaluation tick recomputes each node's
// semantic results array and world transforms in a single depth-first
// pass, then resolves aim-constraint directions. Downstream systems
// (rendering, lights, camera, particles) consume the slots meaningful to
// them and ignore the rest.
package scene

// Slot is a fixed semantic index into a node's results array. The
// enumeration is versioned and shared with every consumer of the results;
// values must not be reordered.
type Slot int

const (
	SlotPosX Slot = iota
	SlotPosY
	SlotPosZ
	SlotScaleX
	SlotScaleY
	SlotScaleZ
	// SlotRotation is a binding target only: curves bound to it populate
	// the node's resolved rotation quaternion, not the scalar array.
	SlotRotation
	SlotAimX
	SlotAimY
	SlotAimZ
	SlotColorR
	SlotColorG
	SlotColorB
	SlotOpacity
	SlotFOV
	SlotRoll
	SlotEmissionRate
	SlotAffectorPower

	SlotCount
)

var slotNames = [SlotCount]string{
	SlotPosX:          "pos_x",
	SlotPosY:          "pos_y",
	SlotPosZ:          "pos_z",
	SlotScaleX:        "scale_x",
	SlotScaleY:        "scale_y",
	SlotScaleZ:        "scale_z",
	SlotRotation:      "rotation",
	SlotAimX:          "aim_x",
	SlotAimY:          "aim_y",
	SlotAimZ:          "aim_z",
	SlotColorR:        "color_r",
	SlotColorG:        "color_g",
	SlotColorB:        "color_b",
	SlotOpacity:       "opacity",
	SlotFOV:           "fov",
	SlotRoll:          "roll",
	SlotEmissionRate:  "emission_rate",
	SlotAffectorPower: "affector_power",
}

// String returns the stable wire name of the slot.
func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return "unknown"
	}
	return slotNames[s]
}

// SlotByName maps a wire name back to its slot index.
func SlotByName(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// defaultFOVDegrees is the camera field of view used when no curve
// drives SlotFOV.
const defaultFOVDegrees = 60

// defaultResults populates a results array with type-appropriate identity
// values so unauthored parameters never read as uninitialized. This is the
// one place node kinds need distinct behavior.
func defaultResults(kind NodeKind) [SlotCount]float32 {
	var r [SlotCount]float32
	r[SlotScaleX] = 1
	r[SlotScaleY] = 1
	r[SlotScaleZ] = 1
	r[SlotOpacity] = 1

	switch kind {
	case KindCamera:
		r[SlotFOV] = defaultFOVDegrees
	case KindLight, KindEmitter, KindObject:
		// Zero color, zero emission: authored curves opt these in.
	}
	return r
}
