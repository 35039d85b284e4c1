package crc

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestReflect(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		width uint
		want  uint32
	}{
		{name: "lowest bit to highest", value: 0x01, width: 8, want: 0x80},
		{name: "highest bit to lowest", value: 0x80, width: 8, want: 0x01},
		{name: "palindrome unchanged", value: 0xA5, width: 8, want: 0xA5},
		{name: "mixed bits", value: 0x3E, width: 8, want: 0x7C},
		{name: "16 bit width", value: 0x0001, width: 16, want: 0x8000},
		{name: "32 bit width", value: 0x00000001, width: 32, want: 0x80000000},
		{name: "bits above width are dropped", value: 0xF1, width: 4, want: 0x08},
		{name: "zero", value: 0, width: 8, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reflect(tt.value, tt.width))
		})
	}
}

func TestReflectTwiceIsIdentity(t *testing.T) {
	for _, value := range []uint32{0x00, 0x12, 0x80, 0xFF, 0xDEAD} {
		assert.Equal(t, value&0xFFFF, Reflect(Reflect(value, 16), 16))
	}
}
