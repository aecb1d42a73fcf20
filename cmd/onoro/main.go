// onoro is a move-generation debugging tool for the Onoro engine,
// modeled on perft: it enumerates the game tree to a fixed depth and
// reports node counts and timing, optionally split per root move.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"gopkg.in/yaml.v3"

	"github.com/onoro-engine/onoro/pkg/onoro"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	pawns  = flag.Int("pawns", 8, "Pawn capacity of the game")
	divide = flag.Bool("divide", false, "Divide counts by root move")
	config = flag.String("config", "", "Optional YAML config file overriding flags")
)

// fileConfig mirrors the flag set for users who prefer a config file
// over a long command line.
type fileConfig struct {
	Depth  *int  `yaml:"depth"`
	Pawns  *int  `yaml:"pawns"`
	Divide *bool `yaml:"divide"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	flag.Parse()

	logw.Infof(ctx, "onoro %v", version)

	if *config != "" {
		if err := applyConfigFile(*config); err != nil {
			logw.Exitf(ctx, "Invalid config '%v': %v", *config, err)
		}
	}

	b := onoro.New(*pawns)

	for i := 1; i <= *depth; i++ {
		if contextx.IsCancelled(ctx) {
			logw.Infof(ctx, "cancelled at depth %v", i)
			return
		}

		start := time.Now()
		nodes := search(ctx, b, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("onoro,%v,%v,%v,%v", *pawns, i, nodes, duration.Microseconds()))
	}
}

func applyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if fc.Depth != nil {
		*depth = *fc.Depth
	}
	if fc.Pawns != nil {
		*pawns = *fc.Pawns
	}
	if fc.Divide != nil {
		*divide = *fc.Divide
	}
	return nil
}

func search(ctx context.Context, b *onoro.Board, depth int, d bool) int64 {
	if depth == 0 || b.IsFinished() || contextx.IsCancelled(ctx) {
		return 1
	}

	var nodes int64
	if !b.InPhase2() {
		b.ForEachMove(func(move onoro.Tile) bool {
			next := b.ApplyPhase1(move)
			count := search(ctx, next, depth-1, false)
			if d {
				println(fmt.Sprintf("%v: %v", move, count))
			}
			nodes += count
			return true
		})
		return nodes
	}

	b.ForEachMoveP2(func(to, from onoro.Tile) bool {
		next := b.ApplyPhase2(to, from)
		count := search(ctx, next, depth-1, false)
		if d {
			println(fmt.Sprintf("%v<-%v: %v", to, from, count))
		}
		nodes += count
		return true
	})
	return nodes
}
