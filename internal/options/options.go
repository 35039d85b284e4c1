// Package options contains the program options.
package options

// Command names supported by the tool.
const (
	CommandChecksum = "checksum"
	CommandDump     = "dump"
	CommandReport   = "report"
)

// Program contains the options shared by all commands.
type Program struct {
	Command string
	Input   string // image file to inspect
	Output  string // output file, stdout if empty
	Format  string // input format override (ihex, binary), auto-detected if empty
	Base    uint32 // base address for raw binary images

	Debug bool
	Quiet bool

	Checksum Checksum
	Dump     Dump
	Report   Report
}

// Checksum contains the options of the checksum command.
type Checksum struct {
	StartAddress uint32
	EndAddress   uint32
	Polynomial   uint32
	BitWidth     uint
	Seed         uint32

	ReflectInput    bool
	ReflectOutput   bool
	ReflectRegister bool // apply output reflection to the final register value
	FinalXOR        bool
}

// Dump contains the options of the dump command.
type Dump struct {
	Address  uint32
	Count    uint32 // number of words to print
	DataType string // u8, u16le, u16be, u32le, u32be
}

// Report contains the options of the report command.
type Report struct {
	Template string // template file to execute
}
