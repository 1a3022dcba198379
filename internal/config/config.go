// Package config handles scenario loading and turns a scenario into a grid
// topology and path finder.
package config

import "errors"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid scenario")

// Scenario holds a complete grid-and-query description.
type Scenario struct {
	Grid    GridConfig     `yaml:"grid"`
	Search  SearchConfig   `yaml:"search"`
	Cells   []CellOverride `yaml:"cells"`
	Removed []Point        `yaml:"removed"`
	Query   QueryConfig    `yaml:"query"`
	Logging LoggingConfig  `yaml:"logging"`
}

// GridConfig holds the lattice shape.
type GridConfig struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	Mode           string `yaml:"mode"`           // bounded | toroidal | boundless
	Representation string `yaml:"representation"` // graph | array
}

// SearchConfig holds path finder settings.
type SearchConfig struct {
	Algorithm     string `yaml:"algorithm"`
	Heuristic     string `yaml:"heuristic"` // manhattan | chebyshev | zero
	MaxExpansions int    `yaml:"max_expansions"`
}

// Point is a cell coordinate in scenario files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// CellOverride sets attributes of one cell. Unset fields keep their defaults.
type CellOverride struct {
	Point  `yaml:",inline"`
	Cost   *float64 `yaml:"cost,omitempty"`
	Sight  *float64 `yaml:"sight,omitempty"`
	Vision *float64 `yaml:"vision,omitempty"`
}

// QueryConfig is the start/goal pair the program searches for.
type QueryConfig struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Scenario with sensible default values: an open 16×16
// bounded graph grid searched corner to corner.
func Default() *Scenario {
	return &Scenario{
		Grid: GridConfig{
			Width:          16,
			Height:         16,
			Mode:           "bounded",
			Representation: "graph",
		},
		Search: SearchConfig{
			Algorithm:     "a-star",
			Heuristic:     "manhattan",
			MaxExpansions: 0,
		},
		Query: QueryConfig{
			From: Point{X: 0, Y: 0},
			To:   Point{X: 15, Y: 15},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
