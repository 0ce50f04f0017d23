package scale

import "fmt"

// InvalidDomainError is returned when a numeric domain has non-finite bounds
// or is inverted.
type InvalidDomainError struct {
	Min, Max float64
	Reason   string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("scale: invalid domain [%g, %g]: %s", e.Min, e.Max, e.Reason)
}
