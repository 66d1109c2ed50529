package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

var half = decimal.RequireFromString("0.5")

// Position is a fractional ordering key for lists, cards and checklist items.
// Values are arbitrary-precision decimals, so a new key can always be placed
// between two neighbours without renumbering. Keys are not unique.
type Position struct {
	v decimal.Decimal
}

// NewPosition returns an integral position.
func NewPosition(n int64) Position {
	return Position{v: decimal.NewFromInt(n)}
}

// ParsePosition parses a decimal string such as "1.5".
func ParsePosition(s string) (Position, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Position{}, fmt.Errorf("parse position %q: %w", s, err)
	}
	return Position{v: d}, nil
}

func (p Position) String() string { return p.v.String() }

// Cmp returns -1, 0 or +1 comparing p with o.
func (p Position) Cmp(o Position) int { return p.v.Cmp(o.v) }

// Next returns the first integral position after p.
func (p Position) Next() Position {
	return Position{v: p.v.Floor().Add(decimal.NewFromInt(1))}
}

func (p Position) MarshalJSON() ([]byte, error) {
	return []byte(p.v.String()), nil
}

func (p *Position) UnmarshalJSON(b []byte) error {
	return p.v.UnmarshalJSON(b)
}

// Scan reads a NUMERIC column selected as text.
func (p *Position) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return p.parse(v)
	case []byte:
		return p.parse(string(v))
	default:
		return fmt.Errorf("scan position: unsupported type %T", src)
	}
}

func (p *Position) parse(s string) error {
	parsed, err := ParsePosition(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value writes the position as decimal text so NUMERIC keeps full precision.
func (p Position) Value() (driver.Value, error) {
	return p.v.String(), nil
}

// PositionBetween returns a key that sorts between prev and next.
// A nil bound means the corresponding end of the sequence is open.
func PositionBetween(prev, next *Position) Position {
	switch {
	case prev == nil && next == nil:
		return NewPosition(1)
	case next == nil:
		return prev.Next()
	case prev == nil:
		if next.v.IsPositive() {
			return Position{v: next.v.Mul(half)}
		}
		return Position{v: next.v.Sub(decimal.NewFromInt(1))}
	default:
		return Position{v: prev.v.Add(next.v).Mul(half)}
	}
}
