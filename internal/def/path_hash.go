package def

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
)

// DefPathHash is a 128-bit fingerprint of a definition's path. It does not
// depend on DefIndex assignment order, so it survives unrelated edits.
type DefPathHash [16]byte

// PathSegment is one component of a definition path: the name plus a
// disambiguator for same-named siblings (closures, impls, anonymous consts).
type PathSegment struct {
	Name          string
	Disambiguator uint32
}

// HashDefPath fingerprints crate + path.
func HashDefPath(crate string, path []PathSegment) DefPathHash {
	var b strings.Builder
	b.WriteString(crate)
	for _, seg := range path {
		b.WriteString("::")
		b.WriteString(seg.Name)
		if seg.Disambiguator != 0 {
			b.WriteByte('#')
			b.WriteString(strconv.FormatUint(uint64(seg.Disambiguator), 10))
		}
	}
	sum := blake3.Sum256([]byte(b.String()))
	var out DefPathHash
	copy(out[:], sum[:len(out)])
	return out
}

func (h DefPathHash) String() string {
	return hex.EncodeToString(h[:])
}
