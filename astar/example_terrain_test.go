package astar_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Example_bridgeIslands plans the cheapest crossing between two islands on
// a game map where wading through water costs ten times walking on land.
//
// Map (5×5): 0 = water, 1..4 = land of different kinds.
//
//	0 1 1 0 2
//	1 1 0 0 2
//	0 0 0 2 2
//	3 0 0 0 0
//	3 3 0 4 4
//
// Route from the west shore of island 1 at (0,1) to island 4 at (3,4).
func Example_bridgeIslands() {
	terrain := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 0, 2},
		{0, 0, 0, 2, 2},
		{3, 0, 0, 0, 0},
		{3, 3, 0, 4, 4},
	}
	const waterCost = 10

	// 1) Dense grid; every cell stays, terrain only changes the cost.
	g, err := gridgraph.NewArrayGrid(5, 5, gridgraph.Bounded)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y, row := range terrain {
		for x, v := range row {
			if v == 0 {
				c := gridgraph.Cell{X: x, Y: y}
				_ = g.SetCost(c, c, waterCost)
			}
		}
	}

	// 2) Chebyshev stays admissible because every cost is at least 1.
	pf, _ := astar.New(g, astar.AStar, astar.WithHeuristic(astar.Chebyshev))
	res, err := pf.Search(gridgraph.Cell{X: 0, Y: 1}, gridgraph.Cell{X: 3, Y: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost %.0f via %v\n", res.Cost, res.Path)

	// 3) Overlay the route (*) on the map (~ water).
	onPath := make(map[gridgraph.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}
	for y, row := range terrain {
		var sb strings.Builder
		for x, v := range row {
			switch {
			case onPath[gridgraph.Cell{X: x, Y: y}]:
				sb.WriteByte('*')
			case v == 0:
				sb.WriteByte('~')
			default:
				sb.WriteString(strconv.Itoa(v))
			}
		}
		fmt.Println(sb.String())
	}

	// Output:
	// cost 21 via [(0,1) (1,2) (2,3) (3,4)]
	// ~11~2
	// *1~~2
	// ~*~22
	// 3~*~~
	// 33~*4
}
