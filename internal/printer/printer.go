// Package printer formats numeric inspection results for output.
package printer

import "fmt"

// FormatValue renders a value as uppercase hex, zero-padded to the number of
// nibbles of the given bit width.
func FormatValue(value uint32, bitWidth uint) string {
	return fmt.Sprintf("%0*X", bitWidth/4, value)
}
