package cli

import (
	"errors"
	"testing"

	"github.com/firmtools/gohexdump/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseChecksumFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Checksum
	}{
		{
			name: "defaults",
			args: []string{"checksum", "-sa", "0", "-ea", "16", "test.hex"},
			want: options.Checksum{
				EndAddress: 16,
				Polynomial: 0x04C11DB7,
				BitWidth:   32,
			},
		},
		{
			name: "hex addresses and parameters",
			args: []string{"checksum", "-sa", "0x8000", "-ea", "0x8010",
				"-p", "0x1021", "-bw", "16", "-s", "0xFFFF", "test.hex"},
			want: options.Checksum{
				StartAddress: 0x8000,
				EndAddress:   0x8010,
				Polynomial:   0x1021,
				BitWidth:     16,
				Seed:         0xFFFF,
			},
		},
		{
			name: "reflection flags",
			args: []string{"checksum", "-sa", "0", "-ea", "4",
				"-ri", "-ro", "-rr", "-fx", "test.hex"},
			want: options.Checksum{
				EndAddress:      4,
				Polynomial:      0x04C11DB7,
				BitWidth:        32,
				ReflectInput:    true,
				ReflectOutput:   true,
				ReflectRegister: true,
				FinalXOR:        true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parse(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, options.CommandChecksum, opts.Command)
			assert.Equal(t, "test.hex", opts.Input)
			assert.Equal(t, tt.want, opts.Checksum)
		})
	}
}

func TestParseDumpFlags(t *testing.T) {
	opts, err := parse([]string{"dump", "-a", "0x100", "-c", "8", "-dt", "u16le", "firmware.bin"})
	assert.NoError(t, err)

	assert.Equal(t, options.CommandDump, opts.Command)
	assert.Equal(t, uint32(0x100), opts.Dump.Address)
	assert.Equal(t, uint32(8), opts.Dump.Count)
	assert.Equal(t, "u16le", opts.Dump.DataType)
}

func TestParseReportFlags(t *testing.T) {
	opts, err := parse([]string{"report", "-t", "report.tpl", "-o", "out.md", "firmware.hex"})
	assert.NoError(t, err)

	assert.Equal(t, options.CommandReport, opts.Command)
	assert.Equal(t, "report.tpl", opts.Report.Template)
	assert.Equal(t, "out.md", opts.Output)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "no arguments", args: nil, wantUsage: true},
		{name: "unknown command", args: []string{"frobnicate", "test.hex"}, wantUsage: true},
		{name: "missing file argument", args: []string{"checksum", "-sa", "0", "-ea", "4"}, wantUsage: true},
		{name: "missing start address", args: []string{"checksum", "-ea", "4", "test.hex"}, wantUsage: true},
		{name: "missing template", args: []string{"report", "test.hex"}, wantUsage: true},
		{name: "invalid number", args: []string{"checksum", "-sa", "zero", "-ea", "4", "test.hex"}},
		{name: "invalid format", args: []string{"dump", "-a", "0", "-f", "elf", "test.hex"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    uint64
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "42", want: 42},
		{input: "0x04C11DB7", want: 0x04C11DB7},
		{input: "0X10", want: 0x10},
		{input: "", wantErr: true},
		{input: "g5", wantErr: true},
		{input: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
