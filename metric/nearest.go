package metric

import "sort"

// Neighbor holds a candidate's id and its computed distance.
type Neighbor struct {
	ID       int
	Distance float64
}

// Nearest returns the k candidates closest to query under fn, ordered by
// increasing distance with ties broken by id. Candidate ids are their
// positions in candidates. k larger than the candidate count returns all of
// them; k <= 0 returns none.
//
// fn must be a distance. For a similarity such as cosine, pass a function
// returning its negation.
func Nearest(query []float64, candidates [][]float64, k int, fn VectorFunc) []Neighbor {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}
	neighbors := make([]Neighbor, len(candidates))
	for id, c := range candidates {
		neighbors[id] = Neighbor{ID: id, Distance: fn(query, c)}
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].Distance == neighbors[j].Distance {
			return neighbors[i].ID < neighbors[j].ID
		}
		return neighbors[i].Distance < neighbors[j].Distance
	})
	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors
}
