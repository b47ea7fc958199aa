package table

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.einride.tech/aip/ordering"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
)

const DefaultPageSize = 10

// State is the user-controlled view state of a table.
type State struct {
	SortColumn    string
	SortDirection Direction
	SearchText    string
	PageIndex     int
	PageSize      int
}

// View is one rendered page.
type View[T any] struct {
	Rows          []T       `json:"rows"`
	Total         int       `json:"total"`
	PageIndex     int       `json:"page"`
	PageSize      int       `json:"page_size"`
	PageCount     int       `json:"page_count"`
	SortColumn    string    `json:"sort_column,omitempty"`
	SortDirection Direction `json:"sort_direction,omitempty"`
	SearchText    string    `json:"search,omitempty"`
}

// Table is a column configuration plus the column search runs against.
type Table[T any] struct {
	searchColumn string
	columns      []Column[T]
	index        map[string]int
}

// New builds a table. searchColumn may be empty to disable search.
func New[T any](searchColumn string, columns ...Column[T]) (*Table[T], error) {
	t := &Table[T]{
		searchColumn: searchColumn,
		columns:      columns,
		index:        make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c.Key == "" || (c.Value == nil && c.Text == nil) {
			return nil, errors.Errorf("[table New] column %d is incomplete", i)
		}
		if _, dup := t.index[c.Key]; dup {
			return nil, errors.Errorf("[table New] duplicate column %q", c.Key)
		}
		t.index[c.Key] = i
	}
	if searchColumn != "" {
		if _, ok := t.index[searchColumn]; !ok {
			return nil, errors.Wrapf(crmerrors.ErrUnknownColumn, "[table New] search column %q", searchColumn)
		}
	}
	return t, nil
}

// MustNew is New for static column configurations.
func MustNew[T any](searchColumn string, columns ...Column[T]) *Table[T] {
	t, err := New(searchColumn, columns...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table[T]) Column(key string) (Column[T], bool) {
	i, ok := t.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return t.columns[i], true
}

func (t *Table[T]) Columns() []Column[T] {
	return t.columns
}

// Keys lists the column keys in configuration order.
func (t *Table[T]) Keys() []string {
	keys := make([]string, len(t.columns))
	for i, c := range t.columns {
		keys[i] = c.Key
	}
	return keys
}

func (t *Table[T]) SearchColumn() string {
	return t.searchColumn
}

// Apply runs search, then sort, then page over records.
func (t *Table[T]) Apply(records []T, st State) (View[T], error) {
	rows := records
	if t.searchColumn != "" {
		rows = ApplySearch(rows, t.columns[t.index[t.searchColumn]], st.SearchText)
	}

	if st.SortColumn != "" {
		col, ok := t.Column(st.SortColumn)
		if !ok {
			return View[T]{}, errors.Wrapf(crmerrors.ErrUnknownColumn, "[Table Apply] %q", st.SortColumn)
		}
		rows = ApplySort(rows, col, st.SortDirection)
	}

	size := st.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	return View[T]{
		Rows:          ApplyPage(rows, st.PageIndex, size),
		Total:         len(rows),
		PageIndex:     st.PageIndex,
		PageSize:      size,
		PageCount:     PageCount(len(rows), size),
		SortColumn:    st.SortColumn,
		SortDirection: st.SortDirection,
		SearchText:    st.SearchText,
	}, nil
}

// ParseOrderBy reads an order_by expression such as "name desc". Only a
// single field is supported.
func (t *Table[T]) ParseOrderBy(s string) (string, Direction, error) {
	if strings.TrimSpace(s) == "" {
		return "", None, nil
	}

	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(s); err != nil {
		return "", None, errors.Wrapf(crmerrors.ErrInvalidOrderBy, "[ParseOrderBy] %v", err)
	}
	if len(orderBy.Fields) != 1 {
		return "", None, errors.Wrap(crmerrors.ErrInvalidOrderBy, "[ParseOrderBy] exactly one field is supported")
	}
	if err := orderBy.ValidateForPaths(t.Keys()...); err != nil {
		return "", None, errors.Wrapf(crmerrors.ErrUnknownColumn, "[ParseOrderBy] %v", err)
	}

	field := orderBy.Fields[0]
	if field.Desc {
		return field.Path, Desc, nil
	}
	return field.Path, Asc, nil
}

func (s State) String() string {
	return fmt.Sprintf("sort=%s %s search=%q page=%d size=%d",
		s.SortColumn, s.SortDirection, s.SearchText, s.PageIndex, s.PageSize)
}
