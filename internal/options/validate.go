// Package options provides shared validation helpers for functional options.
package options

import "fmt"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is
// set; noSourceMsg and multiSourceMsg are the error messages for the zero
// and multiple cases.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case count > 1:
		return fmt.Errorf("%s", multiSourceMsg)
	default:
		return nil
	}
}
