package table

import (
	"strings"

	"github.com/pkg/errors"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
)

// Direction is a sort direction.
type Direction int

const (
	None Direction = iota
	Asc
	Desc
)

func (d Direction) String() string {
	switch d {
	case Asc:
		return "asc"
	case Desc:
		return "desc"
	}
	return ""
}

// ParseDirection accepts asc, desc or empty, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return None, nil
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return None, errors.Wrapf(crmerrors.ErrInvalidRequest, "[ParseDirection] %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
