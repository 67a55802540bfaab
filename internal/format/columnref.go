package format

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type refKind int

const (
	refNone refKind = iota
	refName
	refIndex
)

// ColumnRef addresses a column either by header name or by 0-based position.
// Positional refs exist because some exports ship without a header row.
type ColumnRef struct {
	kind  refKind
	name  string
	index int
}

// Col returns a name-addressed column reference.
func Col(name string) ColumnRef {
	return ColumnRef{kind: refName, name: name}
}

// ColIndex returns a position-addressed column reference.
func ColIndex(i int) ColumnRef {
	return ColumnRef{kind: refIndex, index: i}
}

// IsSet reports whether the reference points at anything.
func (r ColumnRef) IsSet() bool {
	return r.kind != refNone
}

// IsZero lets yaml omitempty treat an unset ref as absent.
func (r ColumnRef) IsZero() bool {
	return r.kind == refNone
}

// Name returns the column name for name-addressed refs.
func (r ColumnRef) Name() (string, bool) {
	return r.name, r.kind == refName
}

// Index returns the 0-based position for index-addressed refs.
func (r ColumnRef) Index() (int, bool) {
	return r.index, r.kind == refIndex
}

func (r ColumnRef) String() string {
	switch r.kind {
	case refName:
		return r.name
	case refIndex:
		return fmt.Sprintf("#%d", r.index)
	}

	return ""
}

// MarshalYAML emits a plain string for name refs and an integer for index refs,
// so saved configs read naturally.
func (r ColumnRef) MarshalYAML() (any, error) {
	switch r.kind {
	case refName:
		return r.name, nil
	case refIndex:
		return r.index, nil
	}

	return nil, nil
}

func (r *ColumnRef) UnmarshalYAML(value *yaml.Node) error {
	var idx int
	if err := value.Decode(&idx); err == nil {
		*r = ColIndex(idx)
		return nil
	}

	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("column ref must be a name or a 0-based index: %w", err)
	}

	if name == "" {
		*r = ColumnRef{}
		return nil
	}

	*r = Col(name)

	return nil
}
