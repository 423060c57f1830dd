//go:build !linux

package memscan

func Scan(pattern []byte) (int, error) {
	if len(pattern) == 0 {
		return 0, ErrEmptyPattern
	}
	return 0, ErrUnsupported
}

func WritableRegions() ([]Region, error) {
	return nil, ErrUnsupported
}
