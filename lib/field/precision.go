package field

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// Precision is the storage precision of a field's elements.
type Precision int
const (
	// Double stores elements as 8-byte IEEE floats. It is the default.
	Double Precision = iota
	// Single stores elements as 4-byte IEEE floats.
	Single
)

// Size returns the number of bytes used by a single element.
func (p Precision) Size() int {
	switch p {
	case Single: return 4
	case Double: return 8
	}
	panic(fmt.Sprintf("Internal error: unrecognized Precision %d.", int(p)))
}

func (p Precision) String() string {
	switch p {
	case Single: return "single"
	case Double: return "double"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// ParsePrecision converts a configuration value to a Precision. Only
// "single" selects Single; every other value selects Double.
func ParsePrecision(s string) Precision {
	if s == "single" { return Single }
	return Double
}

// SystemByteOrder returns the byte order of the machine the code is running
// on. Raw solver dumps are written in this order.
func SystemByteOrder() binary.ByteOrder {
	b := [2]byte{ }
	*(*uint16)(unsafe.Pointer(&b[0])) = uint16(0x0001)
	if b[0] == 0 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseByteOrder converts "little", "big", or "native" (or an empty string)
// into a binary.ByteOrder.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "native": return SystemByteOrder(), nil
	case "little": return binary.LittleEndian, nil
	case "big": return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("The byte order '%s' isn't recognized. The only " +
		"valid byte orders are 'little', 'big', and 'native'.", s)
}
