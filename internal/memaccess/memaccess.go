// Package memaccess provides typed word access over a byte-addressed memory
// image, selectable by data type name.
package memaccess

import (
	"fmt"
	"strings"
)

// Memory is a byte-addressed read-only view over a loaded firmware image.
type Memory interface {
	Byte(address uint32) byte
}

// Access reads fixed-width words from a memory image.
type Access struct {
	name string
	size uint32
	read func(Memory, uint32) uint32
}

// Name returns the data type name of the access.
func (a Access) Name() string {
	return a.name
}

// Size returns the word size in bytes.
func (a Access) Size() uint32 {
	return a.size
}

// Value reads one word at the given address.
func (a Access) Value(mem Memory, address uint32) uint32 {
	return a.read(mem, address)
}

var accessors = map[string]Access{
	"u8": {name: "u8", size: 1, read: func(m Memory, addr uint32) uint32 {
		return uint32(m.Byte(addr))
	}},
	"u16le": {name: "u16le", size: 2, read: func(m Memory, addr uint32) uint32 {
		return uint32(m.Byte(addr)) | uint32(m.Byte(addr+1))<<8
	}},
	"u16be": {name: "u16be", size: 2, read: func(m Memory, addr uint32) uint32 {
		return uint32(m.Byte(addr))<<8 | uint32(m.Byte(addr+1))
	}},
	"u32le": {name: "u32le", size: 4, read: func(m Memory, addr uint32) uint32 {
		return uint32(m.Byte(addr)) | uint32(m.Byte(addr+1))<<8 |
			uint32(m.Byte(addr+2))<<16 | uint32(m.Byte(addr+3))<<24
	}},
	"u32be": {name: "u32be", size: 4, read: func(m Memory, addr uint32) uint32 {
		return uint32(m.Byte(addr))<<24 | uint32(m.Byte(addr+1))<<16 |
			uint32(m.Byte(addr+2))<<8 | uint32(m.Byte(addr+3))
	}},
}

// ByName returns the access for a data type name (u8, u16le, u16be, u32le, u32be).
func ByName(dataType string) (Access, error) {
	access, ok := accessors[strings.ToLower(dataType)]
	if !ok {
		return Access{}, fmt.Errorf("unsupported data type '%s'", dataType)
	}
	return access, nil
}
