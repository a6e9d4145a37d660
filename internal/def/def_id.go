package def

import (
	"cmp"
	"fmt"
)

// CrateNum identifies a crate within one compilation session.
type CrateNum uint32

// DefIndex is the per-crate index of a definition.
type DefIndex uint32

const (
	// LocalCrate is the crate currently being compiled.
	LocalCrate CrateNum = 0
	// CrateDefIndex is the index of the crate root module.
	CrateDefIndex DefIndex = 0
)

// DefID is the globally unique identifier of a definition.
type DefID struct {
	Krate CrateNum
	Index DefIndex
}

// LocalDefID makes a DefID in the local crate.
func LocalDefID(index DefIndex) DefID {
	return DefID{Krate: LocalCrate, Index: index}
}

// IsLocal reports whether the definition belongs to the crate being compiled.
func (id DefID) IsLocal() bool { return id.Krate == LocalCrate }

// IsCrateRoot reports whether id names the root module of its crate.
func (id DefID) IsCrateRoot() bool { return id.Index == CrateDefIndex }

// Compare orders ids by crate, then by index.
func (id DefID) Compare(other DefID) int {
	if c := cmp.Compare(id.Krate, other.Krate); c != 0 {
		return c
	}
	return cmp.Compare(id.Index, other.Index)
}

func (id DefID) String() string {
	return fmt.Sprintf("DefID(%d:%d)", id.Krate, id.Index)
}
