package table

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// ApplySearch keeps the records whose column text contains text, ignoring
// case. Empty text returns records unchanged. Missing values never match.
func ApplySearch[T any](records []T, col Column[T], text string) []T {
	if text == "" {
		return records
	}

	fold := cases.Fold()
	needle := fold.String(text)

	out := make([]T, 0, len(records))
	for _, r := range records {
		s, ok := col.text(r)
		if !ok {
			continue
		}
		if strings.Contains(fold.String(s), needle) {
			out = append(out, r)
		}
	}
	return out
}

// ApplySort returns a stably sorted copy. Missing values sort last in
// both directions. None returns a copy in input order.
func ApplySort[T any](records []T, col Column[T], dir Direction) []T {
	out := slices.Clone(records)
	if dir == None || col.Value == nil {
		return out
	}

	cmp := col.Compare
	if cmp == nil {
		cmp = newComparer().compare
	}

	slices.SortStableFunc(out, func(a, b T) int {
		va, vb := col.Value(a), col.Value(b)
		switch {
		case va == nil && vb == nil:
			return 0
		case va == nil:
			return 1
		case vb == nil:
			return -1
		}
		c := cmp(va, vb)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

// ApplyPage returns the zero-based page. An out-of-range or negative index,
// or a non-positive size, yields an empty page.
func ApplyPage[T any](records []T, pageIndex, pageSize int) []T {
	if pageIndex < 0 || pageSize <= 0 || len(records) == 0 || pageIndex > (len(records)-1)/pageSize {
		return []T{}
	}
	start := pageIndex * pageSize
	end := start + min(pageSize, len(records)-start)
	return slices.Clone(records[start:end])
}

// PageCount is the number of pages needed for total rows.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
