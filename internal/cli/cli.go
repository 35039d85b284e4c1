// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/firmtools/gohexdump/internal/detector"
	"github.com/firmtools/gohexdump/internal/options"
)

// ParseFlags parses the command line and returns the program options.
func ParseFlags() (options.Program, error) {
	return parse(os.Args[1:])
}

func parse(args []string) (options.Program, error) {
	var opts options.Program
	if len(args) == 0 {
		return opts, &UsageError{}
	}

	opts.Command = args[0]
	flags := flag.NewFlagSet(opts.Command, flag.ContinueOnError)
	numeric := registerFlags(flags, &opts)

	switch opts.Command {
	case options.CommandChecksum:
		registerChecksumFlags(flags, &opts, numeric)
	case options.CommandDump:
		registerDumpFlags(flags, &opts, numeric)
	case options.CommandReport:
		registerReportFlags(flags, &opts)
	default:
		return opts, &UsageError{msg: fmt.Sprintf("unknown command '%s'", opts.Command)}
	}

	if err := flags.Parse(args[1:]); err != nil {
		return opts, &UsageError{flags: flags}
	}

	fileArgs := flags.Args()
	if len(fileArgs) != 1 {
		return opts, &UsageError{flags: flags, msg: "expected exactly one image file argument"}
	}
	opts.Input = fileArgs[0]

	if err := numeric.apply(); err != nil {
		return opts, err
	}
	return opts, validateOptions(&opts)
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage of the failed command, or the command overview
// when flag parsing never got that far.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: gohexdump <command> [options] <image file>\n\n")
	fmt.Printf("commands:\n")
	fmt.Printf("  checksum   calculate a CRC checksum over an address range\n")
	fmt.Printf("  dump       print memory contents as a hex dump\n")
	fmt.Printf("  report     render a report template against the image\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
		fmt.Println()
	}
}

// ParseNumber parses a numeric argument, accepting decimal and
// "0x"-prefixed hex notation. All numeric command line arguments go
// through this single function.
func ParseNumber(s string) (uint64, error) {
	value, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", s)
	}
	return value, nil
}

// numericFlags collects string flag targets that are converted by
// ParseNumber after flag parsing, so every numeric option accepts both bases.
type numericFlags struct {
	conversions []func() error
}

func (n *numericFlags) register(flags *flag.FlagSet, name, value, usage string,
	apply func(uint64) error) {

	target := flags.String(name, value, usage)
	n.conversions = append(n.conversions, func() error {
		if *target == "" {
			return &UsageError{flags: flags, msg: fmt.Sprintf("missing required option -%s", name)}
		}
		parsed, err := ParseNumber(*target)
		if err != nil {
			return fmt.Errorf("option -%s: %w", name, err)
		}
		return apply(parsed)
	})
}

func (n *numericFlags) apply() error {
	for _, convert := range n.conversions {
		if err := convert(); err != nil {
			return err
		}
	}
	return nil
}

func registerFlags(flags *flag.FlagSet, opts *options.Program) *numericFlags {
	numeric := &numericFlags{}
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", "", "input format (ihex/binary), auto-detected from the file extension if not given")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	numeric.register(flags, "base", "0", "base address for raw binary images", func(v uint64) error {
		opts.Base = uint32(v)
		return nil
	})
	return numeric
}

func registerChecksumFlags(flags *flag.FlagSet, opts *options.Program, numeric *numericFlags) {
	numeric.register(flags, "sa", "", "the calculation starts at this address", func(v uint64) error {
		opts.Checksum.StartAddress = uint32(v)
		return nil
	})
	numeric.register(flags, "ea", "", "the calculation ends at this address (not included)", func(v uint64) error {
		opts.Checksum.EndAddress = uint32(v)
		return nil
	})
	numeric.register(flags, "p", "0x04C11DB7", "the polynomial for the CRC calculation", func(v uint64) error {
		opts.Checksum.Polynomial = uint32(v)
		return nil
	})
	numeric.register(flags, "bw", "32", "the bit width of the CRC calculation", func(v uint64) error {
		opts.Checksum.BitWidth = uint(v)
		return nil
	})
	numeric.register(flags, "s", "0", "the seed value for the CRC calculation", func(v uint64) error {
		opts.Checksum.Seed = uint32(v)
		return nil
	})
	flags.BoolVar(&opts.Checksum.ReflectInput, "ri", false, "reflect each input byte")
	flags.BoolVar(&opts.Checksum.ReflectOutput, "ro", false, "reflect the output")
	flags.BoolVar(&opts.Checksum.ReflectRegister, "rr", false, "apply output reflection to the final register value instead of the legacy last-byte behavior")
	flags.BoolVar(&opts.Checksum.FinalXOR, "fx", false, "XOR the final value with all bits set")
}

func registerDumpFlags(flags *flag.FlagSet, opts *options.Program, numeric *numericFlags) {
	numeric.register(flags, "a", "", "address to start the dump at", func(v uint64) error {
		opts.Dump.Address = uint32(v)
		return nil
	})
	numeric.register(flags, "c", "16", "number of words to dump", func(v uint64) error {
		opts.Dump.Count = uint32(v)
		return nil
	})
	flags.StringVar(&opts.Dump.DataType, "dt", "u8", "data type to dump (u8/u16le/u16be/u32le/u32be)")
}

func registerReportFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Report.Template, "t", "", "report template file to execute")
}

func validateOptions(opts *options.Program) error {
	if opts.Format != "" {
		if _, ok := detector.FormatFromString(opts.Format); !ok {
			return fmt.Errorf("unsupported input format '%s'", opts.Format)
		}
	}
	if opts.Command == options.CommandReport && opts.Report.Template == "" {
		return &UsageError{msg: "missing required option -t"}
	}
	return nil
}
