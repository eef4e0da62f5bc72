package config

import (
	"errors"
	"fmt"

	"github.com/stverner/vergrid/matrix"
)

// ErrDuplicateMatrix reports two matrix definitions sharing one name,
// whether within a file, across files, or across formats.
var ErrDuplicateMatrix = errors.New("duplicate matrix name")

// Model is the unified representation of every matrix definition loaded
// from a user's config files.
type Model struct {
	Specs []*Spec
}

// Spec is one named matrix definition: the axis set and, optionally, the
// combination exposed under the "default" alias. Name doubles as the
// derived-name prefix for the matrix's targets.
type Spec struct {
	Name       string
	Axes       matrix.AxisSet
	Default    matrix.Combination
	HasDefault bool
}

// Spec returns the named spec, or nil when it is not defined.
func (m *Model) Spec(name string) *Spec {
	for _, s := range m.Specs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Merge appends the specs of other, preserving order and rejecting
// duplicate matrix names.
func (m *Model) Merge(other *Model) error {
	for _, s := range other.Specs {
		if m.Spec(s.Name) != nil {
			return fmt.Errorf("matrix %q: %w", s.Name, ErrDuplicateMatrix)
		}
		m.Specs = append(m.Specs, s)
	}
	return nil
}
