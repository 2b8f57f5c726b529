package physics

// Pair holds the indices of two bodies that may be colliding this tick.
type Pair struct {
	I, J int
}

// BroadPhase returns candidate pairs whose centers are closer than the sum
// of their radii plus the distance both can travel in one tick. Pairs of
// static bodies are skipped. Indices refer to the bodies slice; I < J.
func BroadPhase(bodies []*Body) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if a.Static && b.Static {
				continue
			}
			reach := a.Radius + b.Radius + a.Speed() + b.Speed()
			if a.Pos.DistSq(b.Pos) < reach*reach {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return pairs
}
