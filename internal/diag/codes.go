package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Инварианты HIR
	HirDuplicateLocalID  Code = 1
	HirBodyIdentity      Code = 2
	HirSlicePatArity     Code = 3
	HirOrPatArity        Code = 4
	HirParenthesizedArgs Code = 5
	HirDanglingRef       Code = 6
	HirKindPayload       Code = 7

	// Кэш
	IOCacheRead   Code = 4001
	IOCacheDecode Code = 4002
	IOCacheSchema Code = 4003
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	HirDuplicateLocalID:  "Duplicate local id within an owner",
	HirBodyIdentity:      "Body id differs from its root expression id",
	HirSlicePatArity:     "Malformed rest position in a slice or tuple pattern",
	HirOrPatArity:        "Or-pattern with fewer than two alternatives",
	HirParenthesizedArgs: "Malformed parenthesized generic arguments",
	HirDanglingRef:       "Reference to an id missing from the crate",
	HirKindPayload:       "Node payload does not match its kind",
	IOCacheRead:          "Cannot read cached crate",
	IOCacheDecode:        "Cannot decode cached crate",
	IOCacheSchema:        "Cached crate has an incompatible schema",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1 && ic < 1000:
		return fmt.Sprintf("HIR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
