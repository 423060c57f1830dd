// Command scandemo plays the part of a memory scanner against two scores: a
// plain int64 and an obfint.Int64 that is kept a fixed distance away. After
// every change it counts how often each score's little-endian bytes appear in
// process memory. The plain score is always found; the obfuscated one is not.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/NebulousLabs/fastrand"
	"github.com/paraglidehq/obfint/internal/memscan"
)

func main() {
	rounds := flag.Int("rounds", 5, "number of score changes to scan after")
	start := flag.Int64("start", 0, "initial plain score; 0 picks a random one")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	initial := *start
	if initial == 0 {
		initial = int64(fastrand.Uint64n(1<<40)) + 1<<32
	}
	s := newScores(initial)

	for round := 0; round <= *rounds; round++ {
		if round > 0 {
			s.bump(int64(fastrand.Intn(1000))+1, int64(fastrand.Intn(1000))+1)
		}

		got, err := s.scan()
		if errors.Is(err, memscan.ErrUnsupported) {
			logger.Error("memory scanning is not available on this platform", "os", runtime.GOOS)
			os.Exit(1)
		}
		if err != nil {
			logger.Error("scan failed", "err", err)
			os.Exit(1)
		}

		logger.Info("scanned",
			"round", round,
			"plain_score", *s.plain,
			"obfuscated_score", *s.masked,
			"plain_hits", got.Plain,
			"obfuscated_hits", got.Obfuscated,
		)
	}
}
