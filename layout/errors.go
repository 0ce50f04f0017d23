package layout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDataset is reported as a warning when a dataset has no
	// records. Axes are built over degenerate domains and no marks are
	// produced.
	ErrEmptyDataset = errors.New("layout: empty dataset")

	// ErrDatasetMismatch is returned when a strategy receives a dataset
	// variant it cannot lay out.
	ErrDatasetMismatch = errors.New("layout: dataset does not match chart kind")

	// ErrUnknownKind is returned for an unrecognized chart kind.
	ErrUnknownKind = errors.New("layout: unknown chart kind")
)

// InconsistentSeriesError is reported as a warning when a record's field
// names differ from the first record's. The first record is authoritative:
// missing fields read as 0 and extra fields are ignored.
type InconsistentSeriesError struct {
	Record  string
	Missing []string
	Extra   []string
}

func (e *InconsistentSeriesError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "layout: record %q has inconsistent fields", e.Record)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, "; extra %s", strings.Join(e.Extra, ", "))
	}
	return b.String()
}
