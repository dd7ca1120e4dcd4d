package scene

// resolveTargets runs once after the full hierarchy has been walked, when
// every world position is final. Each node holding a target gets the
// normalized direction toward it written into its aim slots. Targets
// always win: the write unconditionally replaces anything an authored
// curve put there this tick.
func (s *Scene) resolveTargets() {
	for i := range s.nodes {
		n := &s.nodes[i]
		if n.Target == NoTarget {
			continue
		}
		dir := s.nodes[n.Target].WorldPos.Sub(n.WorldPos).Normalize()
		n.Results[SlotAimX] = dir.X
		n.Results[SlotAimY] = dir.Y
		n.Results[SlotAimZ] = dir.Z
	}
}
