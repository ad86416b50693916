// Command jigmatch-demo runs pairwise match scenarios and prints the
// expected and actual outcome of each.
//
//	jigmatch-demo [-fixtures file.yaml] [-log-level debug] [-rotate]
//
// Without -fixtures the embedded reference scenarios are used. The exit
// status is 1 if any scenario disagrees with its expectation.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/jigmatch/fixtures"
	"github.com/katalvlaran/jigmatch/match"
)

func main() {
	path := flag.String("fixtures", "", "scenario YAML file (default: embedded reference scenarios)")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	rotate := flag.Bool("rotate", false, "also search rotations of the second piece")
	flag.Parse()

	logger, err := newLogger(*levelStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	scenarios := fixtures.Default()
	if *path != "" {
		scenarios, err = fixtures.LoadFile(*path)
		if err != nil {
			logger.Error("loading fixtures", zap.String("path", *path), zap.Error(err))
			os.Exit(1)
		}
	}

	m := match.NewMatcher(match.WithLogger(logger))
	failed := run(os.Stdout, m, scenarios, *rotate)
	logger.Info("done", zap.Int("scenarios", len(scenarios)), zap.Int("failed", failed))
	if failed > 0 {
		os.Exit(1)
	}
}

// run evaluates each scenario, writes one line per scenario and returns
// the number of scenarios whose outcome differs from the expectation.
func run(w io.Writer, m *match.Matcher, scenarios []fixtures.Scenario, rotate bool) int {
	failed := 0
	for _, sc := range scenarios {
		a, b, err := sc.Pieces()
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", sc.Name, err)
			failed++
			continue
		}
		res := m.Match(a, b)
		status := "ok"
		if res.Matched != sc.Want {
			status = "MISMATCH"
			failed++
		}
		fmt.Fprintf(w, "%s: expected=%t actual=%t [%s] %s\n", sc.Name, sc.Want, res.Matched, status, res)
		if rotate && !res.Matched {
			if turns, rr, ok := m.FindRotation(a, b); ok {
				fmt.Fprintf(w, "  fits after %d quarter turn(s): %s\n", turns, rr)
			}
		}
	}
	return failed
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("bad -log-level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
