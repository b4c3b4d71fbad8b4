// Package symbols aggregates the top-level values of a program into a
// symbol table: per-namespace registries of defined names, every
// definition recorded under the name it binds, and uniqueness-checked
// slots for the entry points.  Only applications of definition keywords
// contribute entries; every other top-level value is inert.
package symbols

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/chritchens/sophia/pkg/syntax"
	"github.com/chritchens/sophia/pkg/types"
	"github.com/chritchens/sophia/pkg/util/collection/set"
	"github.com/chritchens/sophia/pkg/util/source"
	"github.com/chritchens/sophia/pkg/value"
)

// STElement records one definition: the name it binds, a structural
// snapshot of the defining value, and the originating file.
type STElement struct {
	// Name the definition is registered under.
	Name string
	// Snapshot of the defining value.
	Value value.Value
	// Name of the originating file (empty for raw string input).
	File string
}

// NewSTElement snapshots a given value into a table element registered
// under a given name.
func NewSTElement(name string, v value.Value) STElement {
	return STElement{
		Name:  name,
		Value: v.Clone(),
		File:  v.File(),
	}
}

// SymbolTable holds every definition aggregated from a sequence of
// top-level values.  A name may be defined more than once, for example
// across files; every definition is recorded in source order.
type SymbolTable struct {
	// Files the aggregated values originate from.
	Files *set.SortedSet[string]
	// Defined names per namespace.
	ImportPaths *set.SortedSet[string]
	ExportDefs  *set.SortedSet[string]
	DefTypes    *set.SortedSet[string]
	DefPrims    *set.SortedSet[string]
	DefSums     *set.SortedSet[string]
	DefProds    *set.SortedSet[string]
	DefSigs     *set.SortedSet[string]
	DefFuns     *set.SortedSet[string]
	DefApps     *set.SortedSet[string]
	DefAttrs    *set.SortedSet[string]
	// Definitions per name and namespace.
	Imports *set.SortedMap[string, []STElement]
	Exports *set.SortedMap[string, []STElement]
	Types   *set.SortedMap[string, []STElement]
	Prims   *set.SortedMap[string, []STElement]
	Sums    *set.SortedMap[string, []STElement]
	Prods   *set.SortedMap[string, []STElement]
	Sigs    *set.SortedMap[string, []STElement]
	Funs    *set.SortedMap[string, []STElement]
	Apps    *set.SortedMap[string, []STElement]
	Attrs   *set.SortedMap[string, []STElement]
	// Entry point slots, at most one each.  The first definition of a
	// reserved name wins its slot and any later one is an error.
	MainType  *STElement
	MainSig   *STElement
	MainFun   *STElement
	MainApp   *STElement
	MainAttrs *STElement
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Files:       set.NewSortedSet[string](),
		ImportPaths: set.NewSortedSet[string](),
		ExportDefs:  set.NewSortedSet[string](),
		DefTypes:    set.NewSortedSet[string](),
		DefPrims:    set.NewSortedSet[string](),
		DefSums:     set.NewSortedSet[string](),
		DefProds:    set.NewSortedSet[string](),
		DefSigs:     set.NewSortedSet[string](),
		DefFuns:     set.NewSortedSet[string](),
		DefApps:     set.NewSortedSet[string](),
		DefAttrs:    set.NewSortedSet[string](),
		Imports:     set.NewSortedMap[string, []STElement](),
		Exports:     set.NewSortedMap[string, []STElement](),
		Types:       set.NewSortedMap[string, []STElement](),
		Prims:       set.NewSortedMap[string, []STElement](),
		Sums:        set.NewSortedMap[string, []STElement](),
		Prods:       set.NewSortedMap[string, []STElement](),
		Sigs:        set.NewSortedMap[string, []STElement](),
		Funs:        set.NewSortedMap[string, []STElement](),
		Apps:        set.NewSortedMap[string, []STElement](),
		Attrs:       set.NewSortedMap[string, []STElement](),
	}
}

// FromValues aggregates a sequence of top-level values into a fresh
// symbol table.
func FromValues(values value.Values) (*SymbolTable, error) {
	st := NewSymbolTable()
	//
	if err := st.Aggregate(values); err != nil {
		return nil, err
	}
	//
	return st, nil
}

// FromString aggregates every top-level value of a given source text.
func FromString(s string) (*SymbolTable, error) {
	values, err := value.ParseString(s)
	if err != nil {
		return nil, err
	}
	//
	return FromValues(values)
}

// FromFiles aggregates every top-level value of the given source files
// into one table, in file order.
func FromFiles(paths ...string) (*SymbolTable, error) {
	values, err := value.ParseFiles(paths...)
	if err != nil {
		return nil, err
	}
	//
	st, err := FromValues(values)
	if err != nil {
		return nil, err
	}
	//
	log.Debugf("symbol table covers %d source files", st.Files.Len())
	//
	return st, nil
}

// Aggregate folds a sequence of top-level values into this table.  The
// pass is sequential in source order, and a duplicate entry point aborts
// it at the value which attempted the refill.
func (st *SymbolTable) Aggregate(values value.Values) error {
	for _, v := range values {
		if err := st.add(v); err != nil {
			return err
		}
	}
	//
	return nil
}

// Summary renders a human readable account of this table: the defined
// names per namespace and the entry points which are filled.  Empty
// namespaces are omitted.
func (st *SymbolTable) Summary() string {
	var builder strings.Builder
	//
	writeNames(&builder, "files", st.Files)
	writeNames(&builder, "imports", st.ImportPaths)
	writeNames(&builder, "exports", st.ExportDefs)
	writeNames(&builder, "types", st.DefTypes)
	writeNames(&builder, "prims", st.DefPrims)
	writeNames(&builder, "sums", st.DefSums)
	writeNames(&builder, "prods", st.DefProds)
	writeNames(&builder, "sigs", st.DefSigs)
	writeNames(&builder, "funs", st.DefFuns)
	writeNames(&builder, "apps", st.DefApps)
	writeNames(&builder, "attrs", st.DefAttrs)
	//
	if entries := st.entryPoints(); len(entries) > 0 {
		builder.WriteString(fmt.Sprintf("entry points: %s\n", strings.Join(entries, ", ")))
	}
	//
	return builder.String()
}

// add folds a single top-level value into this table.
func (st *SymbolTable) add(v value.Value) error {
	if file := v.File(); file != "" {
		st.Files.Insert(file)
	}
	// Only applications of definition keywords contribute.
	if !isBuiltinApp(v) {
		return nil
	}
	//
	switch syntax.Keyword(v.Name) {
	case syntax.KwImport:
		return st.addImport(v)
	case syntax.KwExport:
		return st.addExport(v)
	case syntax.KwDefType:
		return st.addShorthand("type", v)
	case syntax.KwDefSig:
		return st.addShorthand("sig", v)
	case syntax.KwDefPrim:
		return st.addShorthand("prim", v)
	case syntax.KwDefSum:
		return st.addShorthand("sum", v)
	case syntax.KwDefProd:
		return st.addShorthand("prod", v)
	case syntax.KwDefun:
		return st.addShorthand("fun", v)
	case syntax.KwDefAttrs:
		return st.addShorthand("attrs", v)
	case syntax.KwDef:
		return st.addDef(v)
	}
	//
	return nil
}

// addImport records an import path.
func (st *SymbolTable) addImport(v value.Value) error {
	path, err := defName(v)
	if err != nil {
		return err
	}
	//
	st.ImportPaths.Insert(path)
	appendElem(st.Imports, path, NewSTElement(path, v))
	//
	return nil
}

// addExport records the exported names.  The target is either a product
// of symbols, each of which is exported, or a single symbol.
func (st *SymbolTable) addExport(v value.Value) error {
	if len(v.Children) < 2 {
		return source.NewSemanticError(v.Loc(), "expected a name")
	}
	//
	target := v.Children[1]
	//
	if len(target.Children) > 1 {
		for _, child := range target.Children[1:] {
			if child.Name == "" {
				return source.NewSemanticError(child.Loc(), "expected a symbol")
			}
			//
			st.ExportDefs.Insert(child.Name)
			appendElem(st.Exports, child.Name, NewSTElement(child.Name, target))
		}
		//
		return nil
	}
	//
	if target.Name == "" {
		return source.NewSemanticError(target.Loc(), "expected a symbol")
	}
	//
	st.ExportDefs.Insert(target.Name)
	appendElem(st.Exports, target.Name, NewSTElement(target.Name, target))
	//
	return nil
}

// addShorthand records a deftype/defsig/defprim/defsum/defprod/defun/
// defattrs definition, whose name is the second child.
func (st *SymbolTable) addShorthand(tag string, v value.Value) error {
	name, err := defName(v)
	if err != nil {
		return err
	}
	//
	return st.register(tag, name, NewSTElement(name, v), v.Loc())
}

// addDef records a generic definition "(def name spec)".  A spec of two
// children is routed by its keyword tag; a spec of a single child
// defines a primitive; anything else is invalid.
func (st *SymbolTable) addDef(v value.Value) error {
	if len(v.Children) != 3 {
		return source.NewSemanticError(v.Loc(), "invalid definition")
	}
	//
	name := v.Children[1].Name
	if name == "" {
		return source.NewSemanticError(v.Loc(), "expected a name")
	}
	//
	spec := v.Children[2]
	elem := NewSTElement(name, v)
	//
	switch len(spec.Children) {
	case 2:
		tag := spec.Children[0]
		if tag.Name == "" {
			return source.NewSemanticError(v.Loc(), "expected a keyword")
		}
		//
		return st.register(tag.Name, name, elem, v.Loc())
	case 1:
		return st.register("prim", name, elem, v.Loc())
	default:
		return source.NewSemanticError(v.Loc(), "invalid definition")
	}
}

// register inserts a definition into the registries of the namespace a
// given tag names, filling the namespace's entry point slot when the
// name is reserved.
func (st *SymbolTable) register(tag string, name string, elem STElement, loc source.Loc) error {
	switch tag {
	case "type":
		st.define(st.DefTypes, st.Types, name, elem)
		//
		if name == syntax.MainType {
			if st.MainType != nil {
				return source.NewSemanticError(loc, "duplicate Main type")
			}
			//
			st.MainType = &elem
		}
	case "sig":
		st.define(st.DefSigs, st.Sigs, name, elem)
		//
		if name == syntax.MainValue {
			if st.MainSig != nil {
				return source.NewSemanticError(loc, "duplicate main signature")
			}
			//
			st.MainSig = &elem
		}
	case "prim":
		st.define(st.DefPrims, st.Prims, name, elem)
	case "sum":
		st.define(st.DefSums, st.Sums, name, elem)
	case "prod":
		st.define(st.DefProds, st.Prods, name, elem)
	case "fun":
		st.define(st.DefFuns, st.Funs, name, elem)
		//
		if name == syntax.MainValue {
			if st.MainFun != nil {
				return source.NewSemanticError(loc, "duplicate main function")
			}
			//
			st.MainFun = &elem
		}
	case "app":
		st.define(st.DefApps, st.Apps, name, elem)
		//
		if name == syntax.MainValue {
			if st.MainApp != nil {
				return source.NewSemanticError(loc, "duplicate main application")
			}
			//
			st.MainApp = &elem
		}
	case "attrs":
		st.define(st.DefAttrs, st.Attrs, name, elem)
		//
		if name == syntax.MainValue {
			if st.MainAttrs != nil {
				return source.NewSemanticError(loc, "duplicate main attributes")
			}
			//
			st.MainAttrs = &elem
		}
	default:
		return source.NewSemanticError(loc, "unexpected keyword")
	}
	//
	return nil
}

// define records a definition in the name set and the definition map of
// its namespace.
func (st *SymbolTable) define(names *set.SortedSet[string], defs *set.SortedMap[string, []STElement], name string, elem STElement) {
	names.Insert(name)
	appendElem(defs, name, elem)
}

// entryPoints names the entry point slots which are filled.
func (st *SymbolTable) entryPoints() []string {
	var filled []string
	//
	if st.MainType != nil {
		filled = append(filled, "Main type")
	}
	//
	if st.MainSig != nil {
		filled = append(filled, "main signature")
	}
	//
	if st.MainFun != nil {
		filled = append(filled, "main function")
	}
	//
	if st.MainApp != nil {
		filled = append(filled, "main application")
	}
	//
	if st.MainAttrs != nil {
		filled = append(filled, "main attributes")
	}
	//
	return filled
}

// defName extracts the name bound by a definition, which is the name of
// the second child of the application.
func defName(v value.Value) (string, error) {
	if len(v.Children) < 2 || v.Children[1].Name == "" {
		return "", source.NewSemanticError(v.Loc(), "expected a name")
	}
	//
	return v.Children[1].Name, nil
}

// appendElem records a definition under a given name, keeping every
// definition of the name in source order.
func appendElem(defs *set.SortedMap[string, []STElement], name string, elem STElement) {
	elems, _ := defs.Get(name)
	defs.Put(name, append(elems, elem))
}

// writeNames renders a non-empty name set as a single summary line.
func writeNames(builder *strings.Builder, namespace string, names *set.SortedSet[string]) {
	if names.Len() == 0 {
		return
	}
	//
	builder.WriteString(namespace)
	builder.WriteString(": ")
	builder.WriteString(strings.Join(names.Elements(), " "))
	builder.WriteString("\n")
}

// Check whether a given value is an application of a definition keyword.
func isBuiltinApp(v value.Value) bool {
	typing := v.Typing
	//
	return typing.Kind == types.AppKind && len(typing.Args) > 0 &&
		typing.Args[0].Kind == types.BuiltinKind
}
