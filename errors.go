package ggchart

import (
	"errors"

	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/scale"
)

var (
	// ErrHostNotReady is returned by New when the host surface is missing
	// or cannot schedule frames yet.
	ErrHostNotReady = errors.New("ggchart: host surface not ready")

	// ErrDetached is returned when a detached chart is updated.
	ErrDetached = errors.New("ggchart: chart is detached")

	// ErrEmptyDataset is reported when a snapshot has no records.
	ErrEmptyDataset = layout.ErrEmptyDataset
)

// InvalidDomainError is returned when a pass meets a non-finite or
// inverted numeric domain. The pass is aborted and the previous scene stays
// visible.
type InvalidDomainError = scale.InvalidDomainError

// InconsistentSeriesError is reported when records disagree on their field
// names. It does not abort the pass.
type InconsistentSeriesError = layout.InconsistentSeriesError

// IsWarning reports whether err is a non-fatal dataset warning.
func IsWarning(err error) bool {
	var ise *InconsistentSeriesError
	return errors.Is(err, ErrEmptyDataset) || errors.As(err, &ise)
}
