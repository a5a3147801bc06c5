package syntax

import (
	"encoding"
	"fmt"
)

// Kind classifies a node for the purposes of line-wrap checking. Frontends
// collapse their full grammar vocabulary into this set; everything without
// structural meaning for indentation maps to KindOther.
type Kind int

const (
	// KindOther is the catch-all for tokens the verifier treats uniformly.
	KindOther Kind = iota

	// KindAnnotationMarker is the "@" token opening an annotation clause.
	KindAnnotationMarker

	// KindAnnotationClause is a whole annotation, marker and arguments included.
	KindAnnotationClause

	// KindModifierList groups the modifiers (and annotations) of a declaration.
	KindModifierList

	// KindIf is the head of a conditional construct.
	KindIf

	// KindElse is the else branch holder of a conditional construct.
	KindElse

	// KindBlock is a brace-delimited statement list.
	KindBlock

	// KindTypeBody is a brace-delimited member list of a nested type
	// declaration. Its interior forms a separate indentation scope.
	KindTypeBody

	// KindCloseBrace is a closing "}" token.
	KindCloseBrace

	// KindCloseParen is a closing ")" token.
	KindCloseParen

	// KindArrayInit is an array initializer expression.
	KindArrayInit
)

var kindValueMap = map[Kind]string{
	KindOther:            "other",
	KindAnnotationMarker: "annotation-marker",
	KindAnnotationClause: "annotation-clause",
	KindModifierList:     "modifier-list",
	KindIf:               "if",
	KindElse:             "else",
	KindBlock:            "block",
	KindTypeBody:         "type-body",
	KindCloseBrace:       "close-brace",
	KindCloseParen:       "close-paren",
	KindArrayInit:        "array-init",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("kind-invalid(%d)", int(k))
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range kindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown node kind %q", text)
}

func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}

	return []byte(v), nil
}

// IsCloser reports whether the kind marks the end of a wrapped construct.
// Continuation closers align with the header base column rather than with
// continuation lines.
func (k Kind) IsCloser() bool {
	switch k {
	case KindCloseBrace, KindCloseParen, KindArrayInit:
		return true
	default:
		return false
	}
}
