package kernel

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantityText normalizes a textual quantity into a numeric value.
//
// The accepted grammar covers the representations produced by the order
// intake system:
//   - a plain decimal number, with either "." or "," as decimal separator
//   - a multiplicative expression such as "2*3" or "2*1,5"
//
// The function is total: it never fails. Rules:
//   - empty or blank input parses to 0
//   - a "*" expression is the product of its parseable segments; segments
//     that fail to parse are dropped, so "2*abc*3" is 6. An empty segment
//     voids the expression, so a dangling "2*" is 0, not 2, and so is an
//     expression with no parseable segment at all
//   - a plain string that fails to parse is 0
//
// Negative inputs pass through as parsed; no clamping happens here.
func ParseQuantityText(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	if strings.Contains(s, "*") {
		product := 1.0
		parsed := 0
		for _, part := range strings.Split(s, "*") {
			if strings.TrimSpace(part) == "" {
				return 0
			}
			n, err := parseDecimal(part)
			if err != nil {
				continue
			}
			product *= n
			parsed++
		}
		if parsed == 0 {
			return 0
		}
		return product
	}

	n, err := parseDecimal(s)
	if err != nil {
		return 0
	}
	return n
}

// parseDecimal parses one decimal segment, accepting comma as the decimal
// separator. Non-finite values are rejected.
func parseDecimal(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}

// Quantity is a value object pairing a numeric quantity with the original
// display text it was entered as. The intake system records quantities either
// as plain numbers or as multiplicative expressions ("2*1"); keeping the text
// alongside the parsed value lets projections show the operator's notation
// while all arithmetic uses the numeric value.
//
// The zero value is a valid zero quantity.
type Quantity struct {
	value float64
	text  string
}

// NewQuantity creates a Quantity from a plain numeric value.
func NewQuantity(value float64) Quantity {
	return Quantity{value: value}
}

// NewQuantityFromText creates a Quantity by parsing the given text with
// ParseQuantityText, preserving the text for display.
func NewQuantityFromText(text string) Quantity {
	return Quantity{value: ParseQuantityText(text), text: strings.TrimSpace(text)}
}

// Value returns the numeric quantity.
func (q Quantity) Value() float64 {
	return q.value
}

// Text returns the original display text, falling back to the formatted
// numeric value when the quantity was not entered as text.
func (q Quantity) Text() string {
	if q.text != "" {
		return q.text
	}
	return FormatQuantity(q.value)
}

// IsZero reports whether the numeric quantity is zero.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// Sub returns a Quantity reduced by amount, floored at zero. The display
// text is re-derived from the new value: once arithmetic has been applied the
// original expression no longer describes the quantity.
func (q Quantity) Sub(amount float64) Quantity {
	next := q.value - amount
	if next < 0 {
		next = 0
	}
	return Quantity{value: next}
}

// FormatQuantity renders a quantity value without trailing zeros.
func FormatQuantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
