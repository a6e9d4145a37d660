// Package def holds the cross-crate definition identity consumed by the HIR.
//
// A DefID names a construct that introduces its own semantic identity (an
// item, a field, a generic parameter, a closure). Unlike HIR node ids it is
// meaningful across crates and stable across incremental rebuilds as long as
// the defining construct keeps its path. Which constructs receive a DefID is
// decided by a Policy table rather than being hard-wired.
package def
