// Package hir provides the High-level Intermediate Representation.
//
// HIR sits between the syntax tree and type checking. It is a desugared,
// fully resolved tree: `for`, `while`, `if let`, `?` and `.await` are
// already rewritten into loops and matches (a source tag records what they
// were written as), and every path carries the resolution chosen by name
// resolution.
//
// Every node that can be referred to carries a HirID: the owner (the
// enclosing item) plus a dense index local to that owner. Cross links
// between nodes are always ids, never pointers, so the tree stays acyclic
// and can be cached and shared between goroutines once built. The Crate
// aggregate owns all items and bodies and is never mutated after Build.
package hir

import (
	"cmp"
	"fmt"

	"oxbow/internal/def"
)

// OwnerID is the DefIndex of the item that owns a local-id space.
type OwnerID uint32

// ItemLocalID is a node index unique within its owner.
type ItemLocalID uint32

// HirID identifies a node: owner plus local index.
type HirID struct {
	Owner OwnerID
	Local ItemLocalID
}

var (
	// CrateHirID is the id of the crate root module.
	CrateHirID = HirID{Owner: OwnerID(def.CrateDefIndex), Local: 0}
	// DummyHirID is used by synthesised nodes that never get looked up.
	DummyHirID = HirID{Owner: OwnerID(def.CrateDefIndex), Local: ^ItemLocalID(0)}
)

// OwnerDefID returns the local DefID of the owner.
func (id HirID) OwnerDefID() def.DefID {
	return def.LocalDefID(def.DefIndex(id.Owner))
}

// IsOwner reports whether id is the id of the owner node itself.
func (id HirID) IsOwner() bool { return id.Local == 0 }

// Compare orders ids by owner, then by local index. The order is only used
// to give sorted storage a deterministic layout; local indices of different
// owners carry no relation to each other.
func (id HirID) Compare(other HirID) int {
	if c := cmp.Compare(id.Owner, other.Owner); c != 0 {
		return c
	}
	return cmp.Compare(id.Local, other.Local)
}

func (id HirID) String() string {
	return fmt.Sprintf("HirID(%d.%d)", id.Owner, id.Local)
}

// LocalLess compares the local indices of two ids of the same owner.
// Comparing local indices across owners is meaningless and panics.
func LocalLess(a, b HirID) bool {
	if a.Owner != b.Owner {
		panic(&InvariantError{Op: "compare local ids across owners", ID: fmt.Sprintf("%s vs %s", a, b)})
	}
	return a.Local < b.Local
}

// BodyID identifies a Body; it is the id of the body's root expression.
type BodyID struct {
	HirID HirID
}

func (id BodyID) Compare(other BodyID) int { return id.HirID.Compare(other.HirID) }
func (id BodyID) String() string           { return "Body" + id.HirID.String() }

// ItemID references an Item stored in the crate.
type ItemID struct {
	ID HirID
}

func (id ItemID) Compare(other ItemID) int { return id.ID.Compare(other.ID) }
func (id ItemID) String() string           { return "Item" + id.ID.String() }

// TraitItemID references a TraitItem stored in the crate.
type TraitItemID struct {
	HirID HirID
}

func (id TraitItemID) Compare(other TraitItemID) int { return id.HirID.Compare(other.HirID) }
func (id TraitItemID) String() string                { return "TraitItem" + id.HirID.String() }

// ImplItemID references an ImplItem stored in the crate.
type ImplItemID struct {
	HirID HirID
}

func (id ImplItemID) Compare(other ImplItemID) int { return id.HirID.Compare(other.HirID) }
func (id ImplItemID) String() string               { return "ImplItem" + id.HirID.String() }
