package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount with two decimal places, stored as
// decimal(10,2) and serialized as a string ("100.00").
type Money struct {
	decimal.Decimal
}

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{d.Round(2)}, nil
}

func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string { return m.StringFixed(2) }

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.StringFixed(2))
}

// UnmarshalJSON accepts both "12.50" and 12.5.
func (m *Money) UnmarshalJSON(b []byte) error {
	if err := m.Decimal.UnmarshalJSON(b); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

func (m Money) Value() (driver.Value, error) { return m.StringFixed(2), nil }

func (m *Money) Scan(value interface{}) error { return m.Decimal.Scan(value) }

// Hours is an estimated duration with one decimal place, stored as decimal(4,1).
type Hours struct {
	decimal.Decimal
}

func NewHours(s string) (Hours, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Hours{}, fmt.Errorf("invalid hours %q: %w", s, err)
	}
	return Hours{d.Round(1)}, nil
}

func MustHours(s string) Hours {
	h, err := NewHours(s)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Hours) String() string { return h.StringFixed(1) }

func (h Hours) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.StringFixed(1))
}

func (h *Hours) UnmarshalJSON(b []byte) error {
	if err := h.Decimal.UnmarshalJSON(b); err != nil {
		return err
	}
	h.Decimal = h.Decimal.Round(1)
	return nil
}

func (h Hours) Value() (driver.Value, error) { return h.StringFixed(1), nil }

func (h *Hours) Scan(value interface{}) error { return h.Decimal.Scan(value) }

// Times returns price * hours rounded to cents.
func (m Money) Times(h Hours) Money {
	return Money{m.Mul(h.Decimal).Round(2)}
}

var maxHours = decimal.RequireFromString("999.9")

// InRange reports whether h is positive and fits decimal(4,1).
func (h Hours) InRange() bool {
	return h.IsPositive() && h.LessThanOrEqual(maxHours)
}
