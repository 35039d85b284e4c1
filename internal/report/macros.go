package report

import (
	"fmt"
	"text/template"

	"github.com/firmtools/gohexdump/internal/crc"
	"github.com/firmtools/gohexdump/internal/memaccess"
	"github.com/firmtools/gohexdump/internal/memimage"
	"github.com/firmtools/gohexdump/internal/printer"
)

// newMacros builds the macro registry available inside report templates.
// The map is constructed once per report generation run and never mutated.
func newMacros(image *memimage.Image) template.FuncMap {
	return template.FuncMap{
		"checksum":         checksumMacro(image),
		"compareValues":    compareValues,
		"swapMiddleEndian": swapMiddleEndian,
		"hex":              printer.FormatValue,
		"readU8":           readMacro(image, "u8"),
		"readU16LE":        readMacro(image, "u16le"),
		"readU16BE":        readMacro(image, "u16be"),
		"readU32LE":        readMacro(image, "u32le"),
		"readU32BE":        readMacro(image, "u32be"),
	}
}

// checksumMacro runs the CRC engine over an image range with explicit
// parameters and renders the result the same way the checksum command does.
func checksumMacro(image *memimage.Image) func(start, end, polynomial uint32, bitWidth uint,
	seed uint32, reflectInput, reflectOutput, finalXOR bool) (string, error) {

	return func(start, end, polynomial uint32, bitWidth uint,
		seed uint32, reflectInput, reflectOutput, finalXOR bool) (string, error) {

		cfg := crc.Config{
			Polynomial:    polynomial,
			RegisterWidth: bitWidth,
			Seed:          seed,
			ReflectInput:  reflectInput,
			ReflectOutput: reflectOutput,
			FinalXOR:      finalXOR,
		}
		result, err := crc.Compute(image, crc.Range{Start: start, End: end}, cfg)
		if err != nil {
			return "", fmt.Errorf("calculating checksum: %w", err)
		}
		return printer.FormatValue(result, bitWidth), nil
	}
}

// compareValues renders "Ok" when both values match, otherwise both values.
func compareValues(set, actual uint32) string {
	if set == actual {
		return "Ok"
	}
	return fmt.Sprintf("Not Ok (Set: %02X, Actual: %02X)", set, actual)
}

// swapMiddleEndian converts a middle endian value to little endian
// representation, 0xCCDDAABB becomes 0xAABBCCDD.
func swapMiddleEndian(value uint32) uint32 {
	return value<<16 | value>>16
}

func readMacro(image *memimage.Image, dataType string) func(address uint32) (uint32, error) {
	return func(address uint32) (uint32, error) {
		access, err := memaccess.ByName(dataType)
		if err != nil {
			return 0, err
		}
		return access.Value(image, address), nil
	}
}
