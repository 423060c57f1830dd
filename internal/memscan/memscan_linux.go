//go:build linux

package memscan

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

const chunkSize = 1 << 20

// Scan returns how many times pattern occurs in the private, readable and
// writable mappings of the current process. The scanner's own read buffer is
// excluded; the caller's copy of pattern is not.
func Scan(pattern []byte) (int, error) {
	if len(pattern) == 0 {
		return 0, ErrEmptyPattern
	}

	// The scratch buffer lives outside the Go heap so it can be skipped precisely.
	size := chunkSize + len(pattern) - 1
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, fmt.Errorf("memscan: mmap scratch buffer: %w", err)
	}
	defer unix.Munmap(buf)

	regions, err := WritableRegions()
	if err != nil {
		return 0, err
	}

	fd, err := unix.Open("/proc/self/mem", unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, fmt.Errorf("memscan: open /proc/self/mem: %w", err)
	}
	defer unix.Close(fd)

	bufStart := uintptr(unsafe.Pointer(&buf[0]))
	bufEnd := bufStart + uintptr(len(buf))

	count := 0
	for _, region := range regions {
		for _, r := range subtract(region, bufStart, bufEnd) {
			count += scanRegion(fd, r, buf, pattern)
		}
	}
	return count, nil
}

func scanRegion(fd int, r Region, buf, pattern []byte) int {
	count := 0
	for off := r.Start; off < r.End; off += chunkSize {
		n := min(uintptr(len(buf)), r.End-off)
		read, err := unix.Pread(fd, buf[:n], int64(off))
		if err != nil || read <= 0 {
			// guard pages and racing unmaps end the region
			break
		}
		count += countFrom(buf[:read], pattern, chunkSize)
	}
	return count
}

// WritableRegions lists the private mappings of the current process that are
// both readable and writable, as reported by /proc/self/maps.
func WritableRegions() ([]Region, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return nil, fmt.Errorf("memscan: open maps: %w", err)
	}
	defer f.Close()

	var regions []Region
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || len(fields[1]) != 4 || !strings.HasPrefix(fields[1], "rw") || fields[1][3] != 'p' {
			continue
		}
		// skip kernel-provided pages such as [vvar]
		if len(fields) >= 6 && (fields[5] == "[vvar]" || fields[5] == "[vsyscall]") {
			continue
		}
		bounds := strings.SplitN(fields[0], "-", 2)
		if len(bounds) != 2 {
			continue
		}
		start, err := strconv.ParseUint(bounds[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(bounds[1], 16, 64)
		if err != nil {
			continue
		}
		regions = append(regions, Region{Start: uintptr(start), End: uintptr(end)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("memscan: read maps: %w", err)
	}
	return regions, nil
}
