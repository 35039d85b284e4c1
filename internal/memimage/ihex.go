package memimage

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Intel-HEX record types.
const (
	recordData                   = 0x00
	recordEndOfFile              = 0x01
	recordExtendedSegmentAddress = 0x02
	recordStartSegmentAddress    = 0x03
	recordExtendedLinearAddress  = 0x04
	recordStartLinearAddress     = 0x05
)

// minimum record length in hex characters: ':' LL AAAA TT CC
const minRecordLength = 11

var errMissingEOFRecord = errors.New("missing end-of-file record")

// LoadIntelHex parses Intel-HEX records from the reader into an image.
// Data records are placed using the extended segment/linear address base,
// start address records are accepted and ignored. Every record checksum is
// verified. Errors carry the offending line number.
func LoadIntelHex(r io.Reader) (*Image, error) {
	img := &Image{}
	scanner := bufio.NewScanner(r)

	var base uint32
	lineNum := 0
	sawEOF := false

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if sawEOF {
			return nil, fmt.Errorf("line %d: record after end-of-file record", lineNum)
		}

		rec, err := decodeRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		switch rec.typ {
		case recordData:
			img.add(base+uint32(rec.address), rec.data)

		case recordEndOfFile:
			sawEOF = true

		case recordExtendedSegmentAddress:
			field, err := rec.addressField()
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			base = uint32(field) << 4

		case recordExtendedLinearAddress:
			field, err := rec.addressField()
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			base = uint32(field) << 16

		case recordStartSegmentAddress, recordStartLinearAddress:
			// execution start addresses carry no data to load

		default:
			return nil, fmt.Errorf("line %d: unsupported record type %02X", lineNum, rec.typ)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	if !sawEOF {
		return nil, errMissingEOFRecord
	}

	img.normalize()
	return img, nil
}

type record struct {
	address uint16
	typ     byte
	data    []byte
}

// addressField interprets the record payload as a big-endian 16 bit value,
// used by the extended segment and extended linear address records.
func (r record) addressField() (uint16, error) {
	if len(r.data) != 2 {
		return 0, fmt.Errorf("expected 2 data bytes for record type %02X, got %d", r.typ, len(r.data))
	}
	return uint16(r.data[0])<<8 | uint16(r.data[1]), nil
}

// decodeRecord parses one ':LLAAAATT<data>CC' line and verifies its checksum.
func decodeRecord(line string) (record, error) {
	if line[0] != ':' {
		return record{}, errors.New("record does not start with ':'")
	}
	if len(line) < minRecordLength || len(line)%2 == 0 {
		return record{}, fmt.Errorf("invalid record length %d", len(line))
	}

	raw, err := hex.DecodeString(line[1:])
	if err != nil {
		return record{}, fmt.Errorf("decoding record: %w", err)
	}

	dataLen := int(raw[0])
	if len(raw) != dataLen+5 {
		return record{}, fmt.Errorf("record length %d does not match declared data length %d", len(raw), dataLen)
	}

	var sum byte
	for _, b := range raw {
		sum += b
	}
	if sum != 0 {
		return record{}, errors.New("record checksum mismatch")
	}

	return record{
		address: uint16(raw[1])<<8 | uint16(raw[2]),
		typ:     raw[3],
		data:    raw[4 : 4+dataLen],
	}, nil
}
