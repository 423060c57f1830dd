package main

import (
	"encoding/binary"
	"runtime"

	"github.com/paraglidehq/obfint"
	"github.com/paraglidehq/obfint/internal/memscan"
)

// trackGap separates the two tracks so a scan for one score can never match
// the other one.
const trackGap = 1 << 41

// hitCounts is the number of places a scan found each score, not counting the
// scan pattern itself.
type hitCounts struct {
	Plain      int
	Obfuscated int
}

// scores keeps one plain and one obfuscated score on separate tracks.
type scores struct {
	plain  *int64
	masked *obfint.Int64
}

func newScores(start int64) *scores {
	s := &scores{plain: new(int64), masked: new(obfint.Int64)}
	*s.plain = start
	*s.masked = obfint.New(start + trackGap)
	return s
}

// bump adds plainDelta to the plain score and maskedDelta to the obfuscated one.
func (s *scores) bump(plainDelta, maskedDelta int64) {
	*s.plain += plainDelta
	*s.masked = s.masked.Add(obfint.New(maskedDelta))
}

// scan counts the in-memory occurrences of each score's little-endian bytes.
func (s *scores) scan() (hitCounts, error) {
	plainHits, err := hits(*s.plain)
	if err != nil {
		return hitCounts{}, err
	}
	maskedHits, err := hits(s.masked.Int64())
	if err != nil {
		return hitCounts{}, err
	}
	runtime.KeepAlive(s.plain)
	runtime.KeepAlive(s.masked)
	return hitCounts{Plain: plainHits - 1, Obfuscated: maskedHits - 1}, nil
}

func hits(v int64) (int, error) {
	pattern := make([]byte, 8)
	binary.LittleEndian.PutUint64(pattern, uint64(v))
	return memscan.Scan(pattern)
}
