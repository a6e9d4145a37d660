package def

import (
	"fmt"
	"sort"
	"strings"
)

// NodeClass is a coarse category of HIR construct, used as the key of the
// DefID assignment policy.
type NodeClass uint8

const (
	ClassItem NodeClass = iota
	ClassTraitItem
	ClassImplItem
	ClassForeignItem
	ClassVariant
	ClassField
	ClassCtor
	ClassGenericParam
	ClassClosure
	ClassAsyncBlock
	ClassAnonConst
	ClassOpaqueTy
	ClassMacroDef
	ClassParam
	ClassLocal
	ClassArm
	ClassBlock
	ClassStmt
	ClassExpr
	ClassPat
	ClassTy
	ClassLifetime

	numClasses
)

var classNames = [numClasses]string{
	ClassItem:         "item",
	ClassTraitItem:    "trait_item",
	ClassImplItem:     "impl_item",
	ClassForeignItem:  "foreign_item",
	ClassVariant:      "variant",
	ClassField:        "field",
	ClassCtor:         "ctor",
	ClassGenericParam: "generic_param",
	ClassClosure:      "closure",
	ClassAsyncBlock:   "async_block",
	ClassAnonConst:    "anon_const",
	ClassOpaqueTy:     "opaque_ty",
	ClassMacroDef:     "macro_def",
	ClassParam:        "param",
	ClassLocal:        "local",
	ClassArm:          "arm",
	ClassBlock:        "block",
	ClassStmt:         "stmt",
	ClassExpr:         "expr",
	ClassPat:          "pat",
	ClassTy:           "ty",
	ClassLifetime:     "lifetime",
}

func (c NodeClass) String() string {
	if c < numClasses {
		return classNames[c]
	}
	return "unknown"
}

// IsOwner reports whether nodes of this class open their own local-id space.
// Owners must always receive a DefID.
func (c NodeClass) IsOwner() bool {
	switch c {
	case ClassItem, ClassTraitItem, ClassImplItem, ClassForeignItem:
		return true
	default:
		return false
	}
}

// ParseNodeClass maps a policy key such as "generic_param" to its class.
func ParseNodeClass(name string) (NodeClass, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range classNames {
		if n == key {
			return NodeClass(c), nil
		}
	}
	return 0, fmt.Errorf("unknown node class %q", name)
}

// Classes returns every node class in declaration order.
func Classes() []NodeClass {
	out := make([]NodeClass, numClasses)
	for i := range out {
		out[i] = NodeClass(i)
	}
	return out
}

// Policy decides which node classes receive a DefID. The zero value assigns
// none; use DefaultPolicy.
type Policy struct {
	Assign [numClasses]bool
}

// DefaultPolicy gives DefIDs to every name-introducing construct and to
// closures, async blocks, anonymous constants and opaque types, and leaves
// plain expressions, patterns, statements and types with node ids only.
func DefaultPolicy() Policy {
	var p Policy
	for _, c := range []NodeClass{
		ClassItem, ClassTraitItem, ClassImplItem, ClassForeignItem,
		ClassVariant, ClassField, ClassCtor, ClassGenericParam,
		ClassClosure, ClassAsyncBlock, ClassAnonConst, ClassOpaqueTy,
		ClassMacroDef,
	} {
		p.Assign[c] = true
	}
	return p
}

// Assigns reports whether nodes of class c get a DefID.
func (p Policy) Assigns(c NodeClass) bool {
	return c < numClasses && p.Assign[c]
}

// WithOverrides returns a copy of p with the named classes switched on or
// off. Unknown names and attempts to disable an owner class are errors.
func (p Policy) WithOverrides(overrides map[string]bool) (Policy, error) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	out := p
	for _, name := range names {
		c, err := ParseNodeClass(name)
		if err != nil {
			return p, err
		}
		out.Assign[c] = overrides[name]
	}
	if err := out.Validate(); err != nil {
		return p, err
	}
	return out, nil
}

// Validate checks that every owner class keeps its DefID.
func (p Policy) Validate() error {
	for _, c := range Classes() {
		if c.IsOwner() && !p.Assign[c] {
			return fmt.Errorf("def policy: %s owns a local id space and must receive a DefID", c)
		}
	}
	return nil
}

// Table renders the policy as class name -> assigned, for display.
func (p Policy) Table() map[string]bool {
	out := make(map[string]bool, numClasses)
	for _, c := range Classes() {
		out[c.String()] = p.Assign[c]
	}
	return out
}
