package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Flags holds command-line overrides, the highest-priority layer.
type Flags struct {
	Config string
	Debug  bool
	From   string
	To     string
	Dump   bool
}

// RegisterFlags binds the gridpath flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to scenario file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.From, "from", "", "Start cell as x,y (overrides query.from)")
	fs.StringVar(&f.To, "to", "", "Goal cell as x,y (overrides query.to)")
	fs.BoolVar(&f.Dump, "dump", false, "Print the effective scenario and exit")

	return f
}

// Apply applies CLI flag overrides to the scenario.
func (f *Flags) Apply(s *Scenario) error {
	if f.Debug {
		s.Logging.Level = "debug"
	}
	if f.From != "" {
		p, err := ParsePoint(f.From)
		if err != nil {
			return fmt.Errorf("-from: %w", err)
		}
		s.Query.From = p
	}
	if f.To != "" {
		p, err := ParsePoint(f.To)
		if err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		s.Query.To = p
	}

	return nil
}

// ParsePoint parses "x,y".
func ParsePoint(v string) (Point, error) {
	xs, ys, ok := strings.Cut(v, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: point %q, want x,y", ErrInvalidConfig, v)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: point %q, want integers", ErrInvalidConfig, v)
	}

	return Point{X: x, Y: y}, nil
}
