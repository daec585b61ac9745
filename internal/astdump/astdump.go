// Package astdump renders a parsed source.FileID's AST as an indented,
// human-readable tree, the way `-Z dump=ast` surfaces it on the CLI. It is
// deliberately minimal: a debugging aid for developers inspecting the
// parser's output, not a stable serialization format.
package astdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/source"
)

// Printer walks one file's AST and writes an indented dump to w.
type Printer struct {
	w        io.Writer
	builder  *ast.Builder
	interner *source.Interner
	indent   int
}

// New creates a Printer over builder's tables, resolving symbol names
// through interner (normally builder.Interner itself).
func New(w io.Writer, builder *ast.Builder, interner *source.Interner) *Printer {
	return &Printer{w: w, builder: builder, interner: interner}
}

// Print dumps unit's top-level items in source order.
func (p *Printer) Print(unit *ast.SourceUnit) {
	p.line("SourceUnit file=%d", unit.File)
	p.indent++
	for _, id := range unit.Items {
		p.printItem(id)
	}
	p.indent--
}

func (p *Printer) sym(s source.Symbol) string {
	if s == source.NoSymbol {
		return ""
	}
	return p.interner.MustLookup(s)
}

func (p *Printer) path(syms []source.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = p.sym(s)
	}
	return strings.Join(parts, ".")
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent)) //nolint:errcheck
	fmt.Fprintf(p.w, format, args...)                //nolint:errcheck
	fmt.Fprintln(p.w)                                //nolint:errcheck
}

func (p *Printer) printItem(id ast.ItemID) {
	item := p.builder.Items.Get(id)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemPragma:
		p.printPragma(id)
	case ast.ItemImport:
		p.printImport(id)
	case ast.ItemUsing:
		p.printUsing(id)
	case ast.ItemContract:
		p.printContract(id)
	case ast.ItemFunction:
		p.printFunction(id)
	case ast.ItemVariable:
		p.printVariable(id)
	case ast.ItemStruct:
		p.printStruct(id)
	case ast.ItemEnum:
		p.printEnum(id)
	case ast.ItemUdvt:
		p.printUdvt(id)
	case ast.ItemError:
		p.printError(id)
	case ast.ItemEvent:
		p.printEvent(id)
	default:
		p.line("%s", item.Kind)
	}
}

func (p *Printer) printPragma(id ast.ItemID) {
	pr, _ := p.builder.Items.Pragma(id)
	switch pr.Kind {
	case ast.PragmaSolidityVersion:
		p.line("Pragma solidity %s", pr.Version)
	case ast.PragmaAbicoder:
		p.line("Pragma abicoder v%d", pr.AbicoderVersion)
	default:
		p.line("Pragma %s", p.sym(pr.Name))
	}
}

func (p *Printer) printImport(id ast.ItemID) {
	imp, _ := p.builder.Items.Import(id)
	path := p.sym(imp.Path)
	switch imp.Form {
	case ast.ImportStar:
		p.line("Import * as %s from %q", p.sym(imp.Alias), path)
	case ast.ImportSelective:
		names := make([]string, 0, imp.SymbolsCount)
		for _, s := range p.builder.Items.ImportSymbols(imp) {
			if s.Alias != source.NoSymbol {
				names = append(names, p.sym(s.Name)+" as "+p.sym(s.Alias))
			} else {
				names = append(names, p.sym(s.Name))
			}
		}
		p.line("Import {%s} from %q", strings.Join(names, ", "), path)
	default:
		if imp.Alias != source.NoSymbol {
			p.line("Import %q as %s", path, p.sym(imp.Alias))
		} else {
			p.line("Import %q", path)
		}
	}
}

func (p *Printer) printUsing(id ast.ItemID) {
	u, _ := p.builder.Items.Using(id)
	target := "*"
	if !u.ForAny && u.ForType.IsValid() {
		target = p.typeString(u.ForType)
	}
	if u.LibraryPath != nil {
		p.line("Using %s for %s global=%t", p.path(u.LibraryPath), target, u.Global)
		return
	}
	names := make([]string, 0, u.FunctionsCount)
	for _, f := range p.builder.Items.UsingFunctions(u) {
		names = append(names, p.path(f.Path))
	}
	p.line("Using {%s} for %s global=%t", strings.Join(names, ", "), target, u.Global)
}

func (p *Printer) printContract(id ast.ItemID) {
	decl, _ := p.builder.Items.Contract(id)
	bases := make([]string, len(decl.Inherits))
	for i, is := range decl.Inherits {
		bases[i] = p.path(is.Path)
	}
	if len(bases) > 0 {
		p.line("%s %s is %s", decl.Kind, p.sym(decl.Name), strings.Join(bases, ", "))
	} else {
		p.line("%s %s", decl.Kind, p.sym(decl.Name))
	}
	p.indent++
	for _, ci := range p.builder.Items.ContractItems(decl) {
		p.printItem(ci.Item)
	}
	p.indent--
}

func (p *Printer) printParams(label string, params []ast.Param) {
	if len(params) == 0 {
		return
	}
	parts := make([]string, len(params))
	for i, param := range params {
		typ := p.typeString(param.Type)
		name := p.sym(param.Name)
		switch {
		case param.Location != ast.LocationNone && name != "":
			parts[i] = fmt.Sprintf("%s %s %s", typ, param.Location, name)
		case param.Location != ast.LocationNone:
			parts[i] = fmt.Sprintf("%s %s", typ, param.Location)
		case name != "":
			parts[i] = fmt.Sprintf("%s %s", typ, name)
		default:
			parts[i] = typ
		}
	}
	p.line("%s(%s)", label, strings.Join(parts, ", "))
}

func (p *Printer) printFunction(id ast.ItemID) {
	fn, _ := p.builder.Items.Function(id)
	name := p.sym(fn.Name)
	if name == "" {
		name = fmt.Sprintf("<%s>", fn.Kind)
	}
	p.line("Function %s %s %s virtual=%t", name, fn.Visibility, fn.Mutability, fn.Virtual)
	p.indent++
	p.printParams("params", p.builder.Items.FunctionParams(fn))
	p.printParams("returns", p.builder.Items.FunctionReturns(fn))
	for _, mod := range fn.Modifiers {
		p.line("modifier %s", p.path(mod.Path))
	}
	if fn.Body.IsValid() {
		p.line("body: present")
	} else {
		p.line("body: none")
	}
	p.indent--
}

func (p *Printer) printVariable(id ast.ItemID) {
	v, _ := p.builder.Items.Variable(id)
	flags := ""
	if v.Constant {
		flags += " constant"
	}
	if v.Immutable {
		flags += " immutable"
	}
	p.line("Variable %s %s %s%s", p.typeString(v.Type), p.sym(v.Name), v.Visibility, flags)
}

func (p *Printer) printStruct(id ast.ItemID) {
	decl, _ := p.builder.Items.Struct(id)
	p.line("Struct %s", p.sym(decl.Name))
	p.indent++
	for _, f := range p.builder.Items.StructFields(decl) {
		p.line("%s %s", p.typeString(f.Type), p.sym(f.Name))
	}
	p.indent--
}

func (p *Printer) printEnum(id ast.ItemID) {
	decl, _ := p.builder.Items.Enum(id)
	names := make([]string, 0, decl.VariantsCount)
	for _, v := range p.builder.Items.EnumVariants(decl) {
		names = append(names, p.sym(v.Name))
	}
	p.line("Enum %s { %s }", p.sym(decl.Name), strings.Join(names, ", "))
}

func (p *Printer) printUdvt(id ast.ItemID) {
	decl, _ := p.builder.Items.Udvt(id)
	p.line("Udvt %s is %s", p.sym(decl.Name), p.typeString(decl.Underlying))
}

func (p *Printer) printError(id ast.ItemID) {
	decl, _ := p.builder.Items.Error(id)
	p.printParams(fmt.Sprintf("Error %s", p.sym(decl.Name)), p.builder.Items.ErrorParams(decl))
}

func (p *Printer) printEvent(id ast.ItemID) {
	decl, _ := p.builder.Items.Event(id)
	p.printParams(fmt.Sprintf("Event %s anonymous=%t", p.sym(decl.Name), decl.Anonymous), p.builder.Items.EventParams(decl))
}

// typeString renders a TypeID as Solidity-like surface syntax.
func (p *Printer) typeString(id ast.TypeID) string {
	if !id.IsValid() {
		return "<implicit>"
	}
	node := p.builder.Types.Get(id)
	if node == nil {
		return "<invalid>"
	}
	switch node.Kind {
	case ast.TypeExprElementary:
		elem, _ := p.builder.Types.Elementary(id)
		return elementaryString(elem)
	case ast.TypeExprMapping:
		m, _ := p.builder.Types.Mapping(id)
		return fmt.Sprintf("mapping(%s => %s)", p.typeString(m.Key), p.typeString(m.Value))
	case ast.TypeExprArray:
		a, _ := p.builder.Types.Array(id)
		if a.Size.IsValid() {
			return p.typeString(a.Element) + "[N]"
		}
		return p.typeString(a.Element) + "[]"
	case ast.TypeExprFunction:
		fn, _ := p.builder.Types.Function(id)
		params := p.builder.Types.FunctionParams(fn)
		parts := make([]string, len(params))
		for i, prm := range params {
			parts[i] = p.typeString(prm.Type)
		}
		return fmt.Sprintf("function(%s) %s %s", strings.Join(parts, ", "), fn.Visibility, fn.Mutability)
	case ast.TypeExprUserDefined:
		ud, _ := p.builder.Types.UserDefined(id)
		return p.path(ud.Path)
	case ast.TypeExprTuple:
		tup, _ := p.builder.Types.Tuple(id)
		parts := make([]string, len(tup.Elements))
		for i, elemID := range tup.Elements {
			if !elemID.IsValid() {
				parts[i] = ""
				continue
			}
			parts[i] = p.typeString(elemID)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<type>"
	}
}

func elementaryString(e *ast.ElementaryType) string {
	switch e.Elem {
	case ast.ElemAddress:
		return "address"
	case ast.ElemAddressPayable:
		return "address payable"
	case ast.ElemBool:
		return "bool"
	case ast.ElemString:
		return "string"
	case ast.ElemBytes:
		return "bytes"
	case ast.ElemFixedBytes:
		return fmt.Sprintf("bytes%d", e.Width)
	case ast.ElemInt:
		return fmt.Sprintf("int%d", e.Width)
	case ast.ElemUint:
		return fmt.Sprintf("uint%d", e.Width)
	case ast.ElemFixed:
		return fmt.Sprintf("fixed%dx%d", e.M, e.N)
	case ast.ElemUfixed:
		return fmt.Sprintf("ufixed%dx%d", e.M, e.N)
	default:
		return "<elementary>"
	}
}
