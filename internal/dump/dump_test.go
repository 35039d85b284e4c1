package dump

import (
	"bytes"
	"testing"

	"github.com/firmtools/gohexdump/internal/memaccess"
	"github.com/retroenv/retrogolib/assert"
)

type sliceMemory []byte

func (m sliceMemory) Byte(address uint32) byte {
	return m[address]
}

func TestWrite(t *testing.T) {
	mem := make(sliceMemory, 0x40)
	for i := range mem {
		mem[i] = byte(i)
	}

	tests := []struct {
		name     string
		dataType string
		address  uint32
		count    uint32
		want     string
	}{
		{
			name:     "u8 single line",
			dataType: "u8",
			address:  0,
			count:    4,
			want:     "00000000: 00 01 02 03\n",
		},
		{
			name:     "u8 multiple lines",
			dataType: "u8",
			address:  0,
			count:    20,
			want: "00000000: 00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n" +
				"00000010: 10 11 12 13\n",
		},
		{
			name:     "u16le words",
			dataType: "u16le",
			address:  0x10,
			count:    4,
			want:     "00000010: 1110 1312 1514 1716\n",
		},
		{
			name:     "u32be words",
			dataType: "u32be",
			address:  0x20,
			count:    2,
			want:     "00000020: 20212223 24252627\n",
		},
		{
			name:     "empty dump",
			dataType: "u8",
			address:  0,
			count:    0,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access, err := memaccess.ByName(tt.dataType)
			assert.NoError(t, err)

			var buf bytes.Buffer
			assert.NoError(t, Write(&buf, mem, tt.address, tt.count, access))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
