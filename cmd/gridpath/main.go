// Package main is the gridpath command: it loads a scenario, builds the grid
// and path finder it describes, and prints the path for its query.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env is optional; a missing file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Env error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	s, err := config.Load(flags.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}
	if err := flags.Apply(s); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if flags.Dump {
		out, err := s.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		fmt.Print(string(out))
		return 0
	}

	if err := logger.Init(s.Logging.Level, s.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	topo, pf, err := s.Build(logger.Log)
	if err != nil {
		logger.Error("building scenario failed", zap.Error(err))
		return 1
	}
	logger.Info("grid ready",
		zap.Int("width", topo.Width()),
		zap.Int("height", topo.Height()),
		zap.Stringer("mode", topo.Mode()),
		zap.String("representation", s.Grid.Representation),
	)

	from, to := s.Query.From.Cell(), s.Query.To.Cell()
	res, err := pf.Search(from, to)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		fmt.Printf("no path from %v to %v\n", from, to)
		return 3
	case err != nil:
		logger.Error("search failed", zap.Error(err))
		return 1
	}

	fmt.Printf("path: %v\n", res.Path)
	fmt.Printf("steps: %d cost: %g expanded: %d\n", len(res.Path)-1, res.Cost, res.Expanded)

	return 0
}
