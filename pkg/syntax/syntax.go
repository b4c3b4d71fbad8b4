// Package syntax defines the lexical conventions shared by every stage of
// the front end: the reserved definition keywords, the reserved type
// keywords, and the rules which assign a symbol to the value or the type
// namespace.  Classification happens once, at token level, and every later
// stage relies on it.
package syntax

import (
	"strings"
	"unicode"
)

// PathSeparator joins the segments of a qualified symbol, as in "std.math"
// or "math.+".
const PathSeparator = '.'

// MainType is the reserved name of the entry point type.
const MainType = "Main"

// MainValue is the reserved name of the entry point signature, function,
// application and attributes.
const MainValue = "main"

// Keyword is a reserved definition keyword.  Only definition keywords are
// reserved lexically; grammar words such as "fun" or "prod" are ordinary
// value symbols which the form validators match by text.
type Keyword string

// Reserved definition keywords.
const (
	KwImport   Keyword = "import"
	KwExport   Keyword = "export"
	KwDefType  Keyword = "deftype"
	KwDefSig   Keyword = "defsig"
	KwDefPrim  Keyword = "defprim"
	KwDefSum   Keyword = "defsum"
	KwDefProd  Keyword = "defprod"
	KwDefun    Keyword = "defun"
	KwDefAttrs Keyword = "defattrs"
	KwDef      Keyword = "def"
)

// Keywords lists every reserved definition keyword.
var Keywords = []Keyword{
	KwImport, KwExport, KwDefType, KwDefSig, KwDefPrim, KwDefSum,
	KwDefProd, KwDefun, KwDefAttrs, KwDef,
}

// DefTags lists the generic definition tags accepted in the second position
// of a "def" form, as in "(def RGB (type (Prod UInt UInt UInt)))".
var DefTags = []string{
	"type", "sig", "prim", "sum", "prod", "fun", "app", "attrs",
}

// TypeKeywords lists every reserved type keyword of the language.
var TypeKeywords = []string{
	"Empty", "Atomic", "UInt", "Int", "Float", "Char", "String",
	"Fun", "Prod", "Sum",
}

var keywords map[string]bool
var defTags map[string]bool
var typeKeywords map[string]bool

func init() {
	keywords = make(map[string]bool, len(Keywords))
	defTags = make(map[string]bool, len(DefTags))
	typeKeywords = make(map[string]bool, len(TypeKeywords))
	//
	for _, kw := range Keywords {
		keywords[string(kw)] = true
	}
	//
	for _, tag := range DefTags {
		defTags[tag] = true
	}
	//
	for _, kw := range TypeKeywords {
		typeKeywords[kw] = true
	}
}

// IsKeyword checks whether a given lexeme is a reserved definition keyword.
func IsKeyword(s string) bool {
	return keywords[s]
}

// IsDefTag checks whether a given lexeme is a generic definition tag.
func IsDefTag(s string) bool {
	return defTags[s]
}

// IsTypeKeyword checks whether a given lexeme is a reserved type keyword.
func IsTypeKeyword(s string) bool {
	return typeKeywords[s]
}

// IsQualified checks whether a given symbol carries a path, as in "std.io".
// Qualification is decided here, from the lexeme alone, and never revisited.
func IsQualified(s string) bool {
	return strings.ContainsRune(s, PathSeparator)
}

// IsTypeSymbol checks whether a given symbol names a type, which holds
// exactly when the final path segment begins with an upper case letter.
func IsTypeSymbol(s string) bool {
	segment := s
	//
	if i := strings.LastIndexByte(s, byte(PathSeparator)); i >= 0 {
		segment = s[i+1:]
	}
	//
	for _, r := range segment {
		return unicode.IsUpper(r)
	}
	//
	return false
}

// IsValueSymbol checks whether a given symbol names a value.  Every symbol
// which does not name a type names a value, including operator symbols such
// as "+" or ">>".
func IsValueSymbol(s string) bool {
	return !IsTypeSymbol(s)
}

// Segments splits a qualified symbol into its path segments.
func Segments(s string) []string {
	return strings.Split(s, string(PathSeparator))
}
