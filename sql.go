package obfint

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
)

// NullInt64 is an Int64 that may be NULL, for nullable bigint columns and
// optional JSON fields.
//
// Every decoding method leaves n invalid and holding 0 when it fails.
type NullInt64 struct {
	Int64 Int64
	Valid bool
}

var (
	_ driver.Valuer            = NullInt64{}
	_ sql.Scanner              = (*NullInt64)(nil)
	_ json.Marshaler           = NullInt64{}
	_ json.Unmarshaler         = (*NullInt64)(nil)
	_ encoding.TextMarshaler   = NullInt64{}
	_ encoding.TextUnmarshaler = (*NullInt64)(nil)
)

// NullFrom returns a valid NullInt64 holding v.
func NullFrom[T Integer](v T) NullInt64 {
	return NullInt64{Int64: New(v), Valid: true}
}

// NullFromPtr returns an invalid NullInt64 for a nil p and a valid one holding *p otherwise.
func NullFromPtr(p *int64) NullInt64 {
	if p == nil {
		return NullInt64{}
	}
	return NullFrom(*p)
}

// Ptr returns a pointer to a copy of the decoded value, or nil when n is invalid.
func (n NullInt64) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64.Int64()
	return &v
}

// set stores tmp as the valid value, or resets n when decoding failed.
func (n *NullInt64) set(tmp Int64, err error) error {
	if err != nil {
		*n = NullInt64{}
		return err
	}
	n.Int64, n.Valid = tmp, true
	return nil
}

// Value implements driver.Valuer. An invalid n is NULL.
func (n NullInt64) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int64.Value()
}

// Scan implements sql.Scanner. NULL makes n invalid.
func (n *NullInt64) Scan(src any) error {
	if src == nil {
		*n = NullInt64{}
		return nil
	}
	var tmp Int64
	err := tmp.Scan(src)
	return n.set(tmp, err)
}

// MarshalJSON encodes an invalid n as null and a valid one as a JSON number.
func (n NullInt64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Int64.MarshalJSON()
}

// UnmarshalJSON accepts null or anything Int64.UnmarshalJSON accepts.
func (n *NullInt64) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullInt64{}
		return nil
	}
	var tmp Int64
	err := tmp.UnmarshalJSON(b)
	return n.set(tmp, err)
}

// MarshalText encodes an invalid n as empty text.
func (n NullInt64) MarshalText() ([]byte, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int64.MarshalText()
}

// UnmarshalText treats empty text as invalid and anything else as a decimal.
func (n *NullInt64) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*n = NullInt64{}
		return nil
	}
	var tmp Int64
	err := tmp.UnmarshalText(b)
	return n.set(tmp, err)
}
