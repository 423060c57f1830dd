package obfint

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Compile-time interface checks for Int64
var (
	_ fmt.Stringer               = Int64{}
	_ fmt.Formatter              = Int64{}
	_ driver.Valuer              = Int64{}
	_ sql.Scanner                = (*Int64)(nil)
	_ encoding.TextMarshaler     = Int64{}
	_ encoding.TextUnmarshaler   = (*Int64)(nil)
	_ encoding.BinaryMarshaler   = Int64{}
	_ encoding.BinaryUnmarshaler = (*Int64)(nil)
	_ json.Marshaler             = Int64{}
	_ json.Unmarshaler           = (*Int64)(nil)
	_ gob.GobEncoder             = Int64{}
	_ gob.GobDecoder             = (*Int64)(nil)
)

// Parse parses a base 10 string into a freshly masked Int64.
func Parse(s string) (Int64, error) {
	if len(s) == 0 {
		return Int64{}, errors.New("obfint: empty string")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Int64{}, fmt.Errorf("obfint: invalid decimal: %w", err)
	}
	return encode(n), nil
}

// Must panics if err is not nil
func Must(x Int64, err error) Int64 {
	if err != nil {
		panic(err)
	}
	return x
}

// MarshalText implements encoding.TextMarshaler
func (x Int64) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, x.Int64(), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (x *Int64) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = parsed
	return nil
}

// MarshalJSON encodes the decoded value as a JSON number.
func (x Int64) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, x.Int64(), 10), nil
}

// UnmarshalJSON accepts a JSON number, a quoted decimal string or null (0).
func (x *Int64) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*x = encode(0)
		return nil
	}
	if len(b) > 0 && b[0] != '"' {
		n, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidJSON, b)
		}
		*x = encode(n)
		return nil
	}
	if len(b) < 2 || b[len(b)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidJSON, b)
	}
	return x.UnmarshalText(b[1 : len(b)-1])
}

// MarshalBinary returns the decoded value as 8 big-endian bytes.
func (x Int64) MarshalBinary() ([]byte, error) {
	v := x.Int64()
	return []byte{
		byte(v >> 56),
		byte(v >> 48),
		byte(v >> 40),
		byte(v >> 32),
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int64) UnmarshalBinary(b []byte) error {
	if len(b) != 8 {
		return fmt.Errorf("%w, got %d", ErrInvalidLength, len(b))
	}
	*x = encode(int64(b[0])<<56 | int64(b[1])<<48 | int64(b[2])<<40 | int64(b[3])<<32 |
		int64(b[4])<<24 | int64(b[5])<<16 | int64(b[6])<<8 | int64(b[7]))
	return nil
}

// GobEncode implements gob.GobEncoder.
func (x Int64) GobEncode() ([]byte, error) {
	return x.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (x *Int64) GobDecode(data []byte) error {
	return x.UnmarshalBinary(data)
}

// Value implements driver.Valuer. The database sees the plain int64.
func (x Int64) Value() (driver.Value, error) {
	return x.Int64(), nil
}

// Scan implements sql.Scanner.
func (x *Int64) Scan(src interface{}) error {
	if src == nil {
		*x = encode(0)
		return nil
	}
	switch v := src.(type) {
	case Int64:
		*x = encode(v.Int64())
		return nil
	case int64:
		*x = encode(v)
		return nil
	case []byte:
		return x.UnmarshalText(v)
	case string:
		return x.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("obfint: cannot scan %T", src)
	}
}
