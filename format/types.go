package format

type (
	// DataType identifies the wire encoding of a KLV value, as enumerated in
	// Table 40 of the MISP Motion Imagery Handbook.
	DataType uint8

	CompressionType uint8
)

const (
	TypeBER         DataType = 0x1 // TypeBER represents a BER short/long-form unsigned integer.
	TypeBEROID      DataType = 0x2 // TypeBEROID represents a base-128 continuation-bit unsigned integer.
	TypeBinary      DataType = 0x3 // TypeBinary represents opaque bytes.
	TypeBoolean     DataType = 0x4 // TypeBoolean represents a single-byte boolean.
	TypeISO7        DataType = 0x5 // TypeISO7 represents ISO/IEC 646 (7-bit) text.
	TypeUTF8        DataType = 0x6 // TypeUTF8 represents UTF-8 text.
	TypeUTF16       DataType = 0x7 // TypeUTF16 represents UTF-16 text.
	TypeEnumeration DataType = 0x8 // TypeEnumeration represents an enumerated value.
	TypeFloat       DataType = 0x9 // TypeFloat represents an IEEE 754 floating-point value.

	// TypeIMAP represents an unsigned integer that maps to a floating-point
	// value as specified by MISB ST 1201. Knowing the mapping parameters
	// (min, max, resolution) lets this representation use fewer bytes than
	// an equivalent IEEE 754 value.
	TypeIMAP DataType = 0xA

	TypeInteger         DataType = 0xB // TypeInteger represents a big-endian two's-complement integer, 1-16 bytes.
	TypeUnsignedInteger DataType = 0xC // TypeUnsignedInteger represents a big-endian unsigned integer, 1-16 bytes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d DataType) String() string {
	switch d {
	case TypeBER:
		return "BER"
	case TypeBEROID:
		return "BER-OID"
	case TypeBinary:
		return "Binary"
	case TypeBoolean:
		return "Boolean"
	case TypeISO7:
		return "ISO-7"
	case TypeUTF8:
		return "UTF-8"
	case TypeUTF16:
		return "UTF-16"
	case TypeEnumeration:
		return "Enumeration"
	case TypeFloat:
		return "Float"
	case TypeIMAP:
		return "IMAP"
	case TypeInteger:
		return "Integer"
	case TypeUnsignedInteger:
		return "UnsignedInteger"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
