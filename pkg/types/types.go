// Package types defines the primitive type tags attached to every value by
// the reader.  These are lexical classifications, not inferred types; an
// application is tagged with the tags of its constituents and nothing more.
package types

import "strings"

// Kind identifies a primitive type tag.
type Kind int

const (
	// EmptyKind tags the empty literal "()".
	EmptyKind Kind = iota
	// UIntKind tags unsigned number literals.
	UIntKind
	// IntKind tags sign-led integer literals.
	IntKind
	// FloatKind tags float literals.
	FloatKind
	// CharKind tags char literals.
	CharKind
	// StringKind tags string literals.
	StringKind
	// TypeKind tags symbols in the type namespace.
	TypeKind
	// BuiltinKind tags reserved keywords.
	BuiltinKind
	// UnknownKind tags symbols in the value namespace, whose types are not
	// known without inference.
	UnknownKind
	// AppKind tags applications; the argument types are those of the
	// application's constituents, head first.
	AppKind
)

// Type is a primitive type tag, together with constituent tags when the
// kind is AppKind.
type Type struct {
	// Kind of this type.
	Kind Kind
	// Constituent types (AppKind only), head first.
	Args []Type
}

// NewType constructs a scalar type of a given kind.
func NewType(kind Kind) Type {
	return Type{Kind: kind}
}

// NewApp constructs an application type from the types of the constituents,
// head first.
func NewApp(args ...Type) Type {
	return Type{Kind: AppKind, Args: args}
}

// IsApp checks whether this type tags an application.
func (t Type) IsApp() bool {
	return t.Kind == AppKind
}

// Clone returns a structural copy of this type sharing nothing with the
// original.
func (t Type) Clone() Type {
	if t.Args == nil {
		return Type{Kind: t.Kind}
	}
	//
	args := make([]Type, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Clone()
	}
	//
	return Type{Kind: t.Kind, Args: args}
}

// String returns a human readable rendering of this type.  Applications
// print as a parenthesised list of their constituent types.
func (t Type) String() string {
	if t.Kind != AppKind {
		return t.Kind.String()
	}
	//
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, a := range t.Args {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(a.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// String returns the name of a given kind.
func (k Kind) String() string {
	switch k {
	case EmptyKind:
		return "Empty"
	case UIntKind:
		return "UInt"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case CharKind:
		return "Char"
	case StringKind:
		return "String"
	case TypeKind:
		return "Type"
	case BuiltinKind:
		return "Builtin"
	case UnknownKind:
		return "Unknown"
	case AppKind:
		return "App"
	}
	//
	return "?"
}
