package klv

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// UniversalKeyLength is the length of a universal key, always 16 bytes.
const UniversalKeyLength = 16

// UniversalKey is the fixed 16-byte constant that marks the start of a
// universal set in a byte source. A matching source position is an exact
// byte comparison; keys occur at arbitrary offsets.
type UniversalKey [UniversalKeyLength]byte

// UASDatalinkKey is the universal key of the MISB ST 0601 UAS Datalink
// Local Set, the most common KLV metadata block in motion imagery.
var UASDatalinkKey = UniversalKey{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x0B, 0x01, 0x01,
	0x0E, 0x01, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00,
}

// Hash returns the xxHash64 digest of the key bytes, suitable for indexing
// registries of known universal keys.
func (k UniversalKey) Hash() uint64 {
	return xxhash.Sum64(k[:])
}

func (k UniversalKey) String() string {
	return fmt.Sprintf("% 02X", k[:])
}
