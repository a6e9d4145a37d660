package hir

import (
	"fmt"

	"fortio.org/safecast"

	"oxbow/internal/def"
)

// IDAllocator mints HirIDs and DefIDs during lowering. Each owner gets a
// dense local index space starting at zero (the owner node itself); indices
// are never reused. Whether a non-owner node also receives a DefID is decided
// by the allocator's def.Policy.
//
// An IDAllocator is used by a single lowering goroutine and is not safe for
// concurrent use.
type IDAllocator struct {
	policy   def.Policy
	nextDef  int
	locals   map[OwnerID]int
	hirToDef map[HirID]def.DefID
	defToHir map[def.DefIndex]HirID
}

// NewIDAllocator returns an allocator with the crate root already open as
// owner 0.
func NewIDAllocator(policy def.Policy) *IDAllocator {
	if err := policy.Validate(); err != nil {
		panic(err)
	}
	a := &IDAllocator{
		policy:   policy,
		nextDef:  int(def.CrateDefIndex) + 1,
		locals:   map[OwnerID]int{CrateHirID.Owner: 1},
		hirToDef: map[HirID]def.DefID{CrateHirID: def.LocalDefID(def.CrateDefIndex)},
		defToHir: map[def.DefIndex]HirID{def.CrateDefIndex: CrateHirID},
	}
	return a
}

// Policy returns the DefID assignment policy in effect.
func (a *IDAllocator) Policy() def.Policy { return a.policy }

// NewOwner allocates a DefID for a new owner (item, trait item, impl item or
// foreign item) and opens its local id space. The returned id is the owner
// node's own HirID (local index zero).
func (a *IDAllocator) NewOwner(class def.NodeClass) HirID {
	if !class.IsOwner() {
		panic(fmt.Errorf("hir: %s cannot own a local id space", class))
	}
	idx := a.mintDef()
	owner := OwnerID(idx)
	a.locals[owner] = 1
	id := HirID{Owner: owner, Local: 0}
	a.hirToDef[id] = def.LocalDefID(idx)
	a.defToHir[idx] = id
	return id
}

// Next returns a fresh node id inside owner.
func (a *IDAllocator) Next(owner OwnerID) HirID {
	next, ok := a.locals[owner]
	if !ok {
		invariant("allocate in unopened owner", HirID{Owner: owner})
	}
	local, err := safecast.Conv[uint32](next)
	if err != nil || local == uint32(DummyHirID.Local) {
		panic(fmt.Errorf("hir: local id space of owner %d exhausted", owner))
	}
	a.locals[owner] = next + 1
	return HirID{Owner: owner, Local: ItemLocalID(local)}
}

// NextWithDef returns a fresh node id inside owner and, when the policy
// assigns DefIDs to class, a DefID for it as well.
func (a *IDAllocator) NextWithDef(owner OwnerID, class def.NodeClass) (HirID, def.DefID, bool) {
	id := a.Next(owner)
	if !a.policy.Assigns(class) {
		return id, def.DefID{}, false
	}
	idx := a.mintDef()
	did := def.LocalDefID(idx)
	a.hirToDef[id] = did
	a.defToHir[idx] = id
	return id, did, true
}

// LocalCount returns how many local ids owner has handed out, the owner
// node included.
func (a *IDAllocator) LocalCount(owner OwnerID) int {
	return a.locals[owner]
}

// DefOf returns the DefID given to a node, if any.
func (a *IDAllocator) DefOf(id HirID) (def.DefID, bool) {
	did, ok := a.hirToDef[id]
	return did, ok
}

// HirOf maps a local DefIndex back to its node.
func (a *IDAllocator) HirOf(idx def.DefIndex) (HirID, bool) {
	id, ok := a.defToHir[idx]
	return id, ok
}

func (a *IDAllocator) mintDef() def.DefIndex {
	idx, err := safecast.Conv[uint32](a.nextDef)
	if err != nil || idx == ^uint32(0) {
		panic(fmt.Errorf("hir: def index space exhausted: %v", err))
	}
	a.nextDef++
	return def.DefIndex(idx)
}
