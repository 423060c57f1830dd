//go:build linux

package memscan

import (
	"runtime"
	"testing"

	"github.com/NebulousLabs/fastrand"
)

func TestScan(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full memory scan in short mode")
	}

	pattern := make([]byte, 24)
	fastrand.Read(pattern)
	target := make([]byte, 64)
	copy(target[13:], pattern)

	withTarget, err := Scan(pattern)
	if err != nil {
		t.Fatal(err)
	}
	// pattern itself plus the copy in target
	if withTarget < 2 {
		t.Fatalf("Scan found %d occurrences, want at least 2", withTarget)
	}

	clear(target)
	withoutTarget, err := Scan(pattern)
	if err != nil {
		t.Fatal(err)
	}
	if withoutTarget >= withTarget {
		t.Errorf("Scan after clearing target = %d, want fewer than %d", withoutTarget, withTarget)
	}
	runtime.KeepAlive(target)
}

func TestWritableRegions(t *testing.T) {
	regions, err := WritableRegions()
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) == 0 {
		t.Fatal("no writable regions reported")
	}
	for _, r := range regions {
		if r.End <= r.Start {
			t.Errorf("invalid region %#x-%#x", r.Start, r.End)
		}
	}
}
