package gridgraph

import "github.com/zyedidia/generic/mapset"

// ConnectedComponents finds all contiguous regions of live cells under t's
// Neighbors relation. Components are discovered in row-major order of their
// first cell; cells within a component are in BFS order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents(t Topology) ([][]Cell, error) {
	w, h := t.Width(), t.Height()
	seen := make([]bool, w*h)
	var comps [][]Cell

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c0 := Cell{X: x, Y: y}
			if seen[y*w+x] || !t.Contains(c0) {
				continue // visited or removed
			}
			// BFS to collect component
			queue := []Cell{c0}
			seen[y*w+x] = true

			for qi := 0; qi < len(queue); qi++ {
				nbs, err := t.Neighbors(queue[qi])
				if err != nil {
					return nil, err
				}
				for _, n := range nbs {
					if i := n.Y*w + n.X; !seen[i] {
						seen[i] = true
						queue = append(queue, n)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps, nil
}

// Reachable returns the set of cells reachable from `from` (itself included).
// Returns ErrCellNotFound if from is not a live cell.
func Reachable(t Topology, from Cell) (mapset.Set[Cell], error) {
	if !t.Contains(from) {
		return mapset.Set[Cell]{}, cellNotFound(from)
	}

	visited := mapset.New[Cell]()
	visited.Put(from)
	queue := []Cell{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		nbs, err := t.Neighbors(cur)
		if err != nil {
			return mapset.Set[Cell]{}, err
		}
		for _, n := range nbs {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited, nil
}
