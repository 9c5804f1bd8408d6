package encoding

// Width is the concrete container width of a decoded fixed-width integer.
//
// The width is determined solely by the number of bytes the producer stored,
// never by the numeric value: 3 stored bytes always widen to a 32-bit
// container even when the value fits 8 bits. Callers must not assume a fixed
// width for a nominal "integer" field.
type Width uint8

const (
	Width8   Width = 8   // Width8 represents an 8-bit container.
	Width16  Width = 16  // Width16 represents a 16-bit container.
	Width32  Width = 32  // Width32 represents a 32-bit container.
	Width64  Width = 64  // Width64 represents a 64-bit container.
	Width128 Width = 128 // Width128 represents a 128-bit container.
)

// widthFor maps a stored byte count (1-16) to the narrowest container width
// that holds it.
func widthFor(length uint8) Width {
	switch {
	case length == 1:
		return Width8
	case length == 2:
		return Width16
	case length <= 4:
		return Width32
	case length <= 8:
		return Width64
	default:
		return Width128
	}
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "8-bit"
	case Width16:
		return "16-bit"
	case Width32:
		return "32-bit"
	case Width64:
		return "64-bit"
	case Width128:
		return "128-bit"
	default:
		return "Unknown"
	}
}
