// Package dump formats memory image contents as a classic hex dump.
package dump

import (
	"fmt"
	"io"

	"github.com/firmtools/gohexdump/internal/memaccess"
)

const bytesPerLine = 16

// Write prints count words of the given data type starting at address.
// Each line covers 16 bytes, the address and the words are printed as
// uppercase hex, the word width follows the word size.
func Write(w io.Writer, mem memaccess.Memory, address, count uint32, access memaccess.Access) error {
	wordsPerLine := bytesPerLine / access.Size()
	digits := int(access.Size()) * 2

	for i := uint32(0); i < count; i++ {
		addr := address + i*access.Size()

		if i%wordsPerLine == 0 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return fmt.Errorf("writing dump: %w", err)
				}
			}
			if _, err := fmt.Fprintf(w, "%08X:", addr); err != nil {
				return fmt.Errorf("writing dump: %w", err)
			}
		}

		if _, err := fmt.Fprintf(w, " %0*X", digits, access.Value(mem, addr)); err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
	}

	if count > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing dump: %w", err)
		}
	}
	return nil
}
