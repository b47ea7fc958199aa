// Package table applies search, sort and pagination to in-memory record
// collections. Every operation is pure: the source slice is never modified.
package table

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column describes one field of a record type.
type Column[T any] struct {
	Key   string
	Label string

	// Value extracts the field. A nil result means the value is missing.
	Value func(T) any

	// Compare orders two non-missing values. Nil uses the default ordering.
	Compare func(a, b any) int

	// Text renders the value for search. Nil stringifies Value.
	Text func(T) string
}

// Header is the display label, falling back to the key.
func (c Column[T]) Header() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key
}

// Cell renders the column for display. Missing values render empty.
func (c Column[T]) Cell(r T) string {
	s, _ := c.text(r)
	return s
}

func (c Column[T]) text(r T) (string, bool) {
	if c.Text != nil {
		return c.Text(r), true
	}
	v := c.Value(r)
	if v == nil {
		return "", false
	}
	return Stringify(v), true
}

// Stringify renders a value the way search sees it.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// comparer holds per-call state for the default ordering. Collators are not
// safe for concurrent use.
type comparer struct {
	collator *collate.Collator
}

func newComparer() *comparer {
	return &comparer{collator: collate.New(language.English, collate.IgnoreCase)}
}

// compare orders numbers numerically, times chronologically, bools false
// first and strings with a case-insensitive collator. Values of different
// kinds fall back to comparing their text.
func (c *comparer) compare(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if na, ok := number(ra); ok {
		if nb, ok := number(rb); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}

	if ra.Kind() == reflect.Bool && rb.Kind() == reflect.Bool {
		switch {
		case ra.Bool() == rb.Bool():
			return 0
		case !ra.Bool():
			return -1
		}
		return 1
	}

	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return c.strings(ra.String(), rb.String())
	}
	return c.strings(Stringify(a), Stringify(b))
}

func (c *comparer) strings(a, b string) int {
	if r := c.collator.CompareString(a, b); r != 0 {
		return r
	}
	// Collation ties on case; keep the order deterministic.
	return strings.Compare(a, b)
}

func number(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
