package cdecl

import "fmt"

// NodeKind tags every concrete declarator-AST node type (§3.4).
type NodeKind int

const (
	KPlaceholder NodeKind = iota
	KBuiltin
	KTypedefRef
	KEnum
	KRecord // struct / class / union, discriminated by RecordNode.RecordKind
	KConcept
	KName
	KVariadic
	KPointer
	KReference
	KRValueRef
	KPointerToMember
	KArray
	KFunction
	KAppleBlock
	KOperator
	KConstructor
	KDestructor
	KUserDefinedConversion
	KUserDefinedLiteral
	KLambda
	KCapture
	KStructuredBinding
	KCast
)

var kindName = map[NodeKind]string{
	KPlaceholder: "placeholder", KBuiltin: "builtin", KTypedefRef: "typedef-ref",
	KEnum: "enum", KRecord: "record", KConcept: "concept", KName: "name",
	KVariadic: "variadic", KPointer: "pointer", KReference: "reference",
	KRValueRef: "rvalue-reference", KPointerToMember: "pointer-to-member",
	KArray: "array", KFunction: "function", KAppleBlock: "apple-block",
	KOperator: "operator", KConstructor: "constructor", KDestructor: "destructor",
	KUserDefinedConversion: "user-defined-conversion", KUserDefinedLiteral: "user-defined-literal",
	KLambda: "lambda", KCapture: "capture", KStructuredBinding: "structured-binding",
	KCast: "cast",
}

func (k NodeKind) String() string { return kindName[k] }

// isParentKind reports whether a referrer of this kind also owns the
// target's parent back-pointer (§4.1 "Referrer vs. parent"). Only
// typedef-refs are non-parent referrers: they borrow a shared,
// orphan-rooted type AST.
func isParentKind(k NodeKind) bool { return k != KTypedefRef }

// isFunctionLikeKind reports whether a node kind carries a parameter
// list, used by the parameter-pack bubble-up rule (§4.1 set_parent).
func isFunctionLikeKind(k NodeKind) bool {
	switch k {
	case KFunction, KAppleBlock, KOperator, KConstructor, KDestructor,
		KUserDefinedConversion, KUserDefinedLiteral, KLambda:
		return true
	default:
		return false
	}
}

// AlignKind tags the flavor of an alignment directive.
type AlignKind int

const (
	AlignNone AlignKind = iota
	AlignBytes
	AlignSName
	AlignType
)

// Alignment is `_Alignas`/`alignas` metadata attached to any node.
type Alignment struct {
	Kind  AlignKind
	Bytes int
	SName ScopedName
	Type  Node
}

// RecordKind discriminates a RecordNode's struct/class/union flavor.
type RecordKind int

const (
	RecordStruct RecordKind = iota
	RecordClass
	RecordUnion
)

// ArraySizeKind discriminates the four array-size forms of §3.4.
type ArraySizeKind int

const (
	ArraySizeNone  ArraySizeKind = iota // `int x[]`
	ArraySizeInt                        // `int x[3]`
	ArraySizeVLA                        // `int x[*]`
	ArraySizeNamed                       // `int x[n]`
)

// CastKind discriminates the cast-node variants of §3.4.
type CastKind int

const (
	CastC CastKind = iota
	CastStatic
	CastDynamic
	CastReinterpret
	CastConst
)

// CaptureKind discriminates a lambda capture item's flavor.
type CaptureKind int

const (
	CaptureByCopy CaptureKind = iota
	CaptureByRef
	CaptureThis
	CaptureRefThis // `&this`, not legal C++ but kept for symmetry with `*this`
	CaptureStarThis
)

// Node is the common interface implemented by every declarator-AST
// node (§3.4). Every node carries a unique id, a source range, an
// alignment directive, a scoped name, a type-id, a parameter-pack
// flag, a parent back-pointer, a dup-source back-pointer, and the
// declarator depth it was created at.
type Node interface {
	ID() int
	Kind() NodeKind
	Range() Range
	Alignment() Alignment
	SetAlignment(Alignment)
	SName() ScopedName
	SetSName(ScopedName)
	Type() TypeID
	SetType(TypeID)
	IsParamPack() bool
	SetParamPack(bool)
	Parent() Node
	setParent(Node)
	ParamOf() Node
	setParamOf(Node)
	DupFrom() Node
	setDupFrom(Node)
	Depth() int
	Accept(Visitor) error
	Equal(Node) bool
}

// Referrer is implemented by every node kind that owns a single `of`
// link to another node (§3.4 "Referrer vs. parent").
type Referrer interface {
	Node
	Of() Node
	SetOf(Node)
}

// base is embedded by every concrete node type and implements the
// common Node accessors; kind-specific Accept/Equal are implemented
// on the owning concrete type.
type base struct {
	id        int
	kind      NodeKind
	rg        Range
	align     Alignment
	sname     ScopedName
	typ       TypeID
	paramPack bool
	parent    Node
	paramOf   Node
	dupFrom   Node
	depth     int
}

func (b *base) ID() int                    { return b.id }
func (b *base) Kind() NodeKind             { return b.kind }
func (b *base) Range() Range               { return b.rg }
func (b *base) Alignment() Alignment       { return b.align }
func (b *base) SetAlignment(a Alignment)   { b.align = a }
func (b *base) SName() ScopedName          { return b.sname }
func (b *base) SetSName(s ScopedName)      { b.sname = s }
func (b *base) Type() TypeID               { return b.typ }
func (b *base) SetType(t TypeID)           { b.typ = t }
func (b *base) IsParamPack() bool          { return b.paramPack }
func (b *base) SetParamPack(v bool)        { b.paramPack = v }
func (b *base) Parent() Node               { return b.parent }
func (b *base) setParent(p Node)           { b.parent = p }
func (b *base) ParamOf() Node              { return b.paramOf }
func (b *base) setParamOf(f Node)          { b.paramOf = f }
func (b *base) DupFrom() Node              { return b.dupFrom }
func (b *base) setDupFrom(n Node)          { b.dupFrom = n }
func (b *base) Depth() int                 { return b.depth }

func newBase(arena *Arena, kind NodeKind, depth int, rg Range) base {
	return base{id: arena.nextID(), kind: kind, rg: rg, depth: depth, typ: TypeID{}}
}

// ---- Concrete node types ----

// PlaceholderNode is the temporary sentinel spliced out during
// declarator composition (§4.1 patch_placeholder).
type PlaceholderNode struct{ base }

func NewPlaceholder(arena *Arena, depth int, rg Range) *PlaceholderNode {
	n := &PlaceholderNode{base: newBase(arena, KPlaceholder, depth, rg)}
	arena.register(n)
	return n
}
func (n *PlaceholderNode) Accept(v Visitor) error { return v.VisitPlaceholder(n) }
func (n *PlaceholderNode) Equal(o Node) bool      { _, ok := o.(*PlaceholderNode); return ok }

// BuiltinNode is void/arithmetic/_BitInt (§3.4).
type BuiltinNode struct {
	base
	BitWidth    int // explicit bit-field width, 0 if none
	BitIntWidth int // `_BitInt(N)` width, 0 if not a _BitInt
}

func NewBuiltin(arena *Arena, depth int, rg Range) *BuiltinNode {
	n := &BuiltinNode{base: newBase(arena, KBuiltin, depth, rg)}
	arena.register(n)
	return n
}
func (n *BuiltinNode) Accept(v Visitor) error { return v.VisitBuiltin(n) }
func (n *BuiltinNode) Equal(o Node) bool {
	other, ok := o.(*BuiltinNode)
	return ok && typesEqual(n, other) && n.BitWidth == other.BitWidth && n.BitIntWidth == other.BitIntWidth
}

// TypedefRefNode is a non-owning reference to a named typedef AST
// (§3.4, §9 "Non-parent referrer").
type TypedefRefNode struct {
	base
	target   Node
	BitWidth int
}

func NewTypedefRef(arena *Arena, depth int, rg Range, target Node) *TypedefRefNode {
	n := &TypedefRefNode{base: newBase(arena, KTypedefRef, depth, rg), target: target}
	arena.register(n)
	return n
}
func (n *TypedefRefNode) Of() Node          { return n.target }
func (n *TypedefRefNode) SetOf(o Node)      { n.target = o }
func (n *TypedefRefNode) Accept(v Visitor) error { return v.VisitTypedefRef(n) }
func (n *TypedefRefNode) Equal(o Node) bool {
	other, ok := o.(*TypedefRefNode)
	if !ok || !typesEqual(n, other) || n.BitWidth != other.BitWidth {
		return false
	}
	if !n.sname.Equal(other.sname) {
		return false
	}
	return nodeEqual(n.target, other.target)
}

// EnumNode is an enumeration tag (§3.4).
type EnumNode struct {
	base
	of       Node // underlying type, may be nil
	BitWidth int
}

func NewEnum(arena *Arena, depth int, rg Range) *EnumNode {
	n := &EnumNode{base: newBase(arena, KEnum, depth, rg)}
	arena.register(n)
	return n
}
func (n *EnumNode) Of() Node              { return n.of }
func (n *EnumNode) SetOf(o Node)          { n.of = o }
func (n *EnumNode) Accept(v Visitor) error { return v.VisitEnum(n) }
func (n *EnumNode) Equal(o Node) bool {
	other, ok := o.(*EnumNode)
	return ok && typesEqual(n, other) && n.sname.Equal(other.sname) &&
		n.BitWidth == other.BitWidth && nodeEqual(n.of, other.of)
}

// RecordNode is a struct/class/union tag (§3.4).
type RecordNode struct {
	base
	RecordKind RecordKind
}

func NewRecord(arena *Arena, depth int, rg Range, rk RecordKind) *RecordNode {
	n := &RecordNode{base: newBase(arena, KRecord, depth, rg), RecordKind: rk}
	arena.register(n)
	return n
}
func (n *RecordNode) Accept(v Visitor) error { return v.VisitRecord(n) }
func (n *RecordNode) Equal(o Node) bool {
	other, ok := o.(*RecordNode)
	return ok && typesEqual(n, other) && n.RecordKind == other.RecordKind && n.sname.Equal(other.sname)
}

// ConceptNode is a C++20 concept reference (§3.4).
type ConceptNode struct{ base }

func NewConcept(arena *Arena, depth int, rg Range) *ConceptNode {
	n := &ConceptNode{base: newBase(arena, KConcept, depth, rg)}
	arena.register(n)
	return n
}
func (n *ConceptNode) Accept(v Visitor) error { return v.VisitConcept(n) }
func (n *ConceptNode) Equal(o Node) bool {
	other, ok := o.(*ConceptNode)
	return ok && typesEqual(n, other) && n.sname.Equal(other.sname)
}

// NameNode is a K&R-style typeless parameter (§3.4).
type NameNode struct{ base }

func NewName(arena *Arena, depth int, rg Range) *NameNode {
	n := &NameNode{base: newBase(arena, KName, depth, rg)}
	arena.register(n)
	return n
}
func (n *NameNode) Accept(v Visitor) error { return v.VisitName(n) }
func (n *NameNode) Equal(o Node) bool {
	other, ok := o.(*NameNode)
	return ok && typesEqual(n, other) && n.sname.Equal(other.sname)
}

// VariadicNode is `...` (§3.4).
type VariadicNode struct{ base }

func NewVariadic(arena *Arena, depth int, rg Range) *VariadicNode {
	n := &VariadicNode{base: newBase(arena, KVariadic, depth, rg)}
	arena.register(n)
	return n
}
func (n *VariadicNode) Accept(v Visitor) error { return v.VisitVariadic(n) }
func (n *VariadicNode) Equal(o Node) bool      { _, ok := o.(*VariadicNode); return ok }

// PointerNode, ReferenceNode, RValueRefNode are the three single-`of`
// indirection kinds (§3.4).
type PointerNode struct {
	base
	of Node
}

func NewPointer(arena *Arena, depth int, rg Range) *PointerNode {
	n := &PointerNode{base: newBase(arena, KPointer, depth, rg)}
	arena.register(n)
	return n
}
func (n *PointerNode) Of() Node               { return n.of }
func (n *PointerNode) SetOf(o Node)           { n.of = o }
func (n *PointerNode) Accept(v Visitor) error { return v.VisitPointer(n) }
func (n *PointerNode) Equal(o Node) bool {
	other, ok := o.(*PointerNode)
	return ok && typesEqual(n, other) && nodeEqual(n.of, other.of)
}

type ReferenceNode struct {
	base
	of Node
}

func NewReference(arena *Arena, depth int, rg Range) *ReferenceNode {
	n := &ReferenceNode{base: newBase(arena, KReference, depth, rg)}
	arena.register(n)
	return n
}
func (n *ReferenceNode) Of() Node               { return n.of }
func (n *ReferenceNode) SetOf(o Node)           { n.of = o }
func (n *ReferenceNode) Accept(v Visitor) error { return v.VisitReference(n) }
func (n *ReferenceNode) Equal(o Node) bool {
	other, ok := o.(*ReferenceNode)
	return ok && typesEqual(n, other) && nodeEqual(n.of, other.of)
}

type RValueRefNode struct {
	base
	of Node
}

func NewRValueRef(arena *Arena, depth int, rg Range) *RValueRefNode {
	n := &RValueRefNode{base: newBase(arena, KRValueRef, depth, rg)}
	arena.register(n)
	return n
}
func (n *RValueRefNode) Of() Node               { return n.of }
func (n *RValueRefNode) SetOf(o Node)           { n.of = o }
func (n *RValueRefNode) Accept(v Visitor) error { return v.VisitRValueRef(n) }
func (n *RValueRefNode) Equal(o Node) bool {
	other, ok := o.(*RValueRefNode)
	return ok && typesEqual(n, other) && nodeEqual(n.of, other.of)
}

// PointerToMemberNode is a C++ pointer-to-member (§3.4).
type PointerToMemberNode struct {
	base
	of    Node
	Class ScopedName
}

func NewPointerToMember(arena *Arena, depth int, rg Range) *PointerToMemberNode {
	n := &PointerToMemberNode{base: newBase(arena, KPointerToMember, depth, rg)}
	arena.register(n)
	return n
}
func (n *PointerToMemberNode) Of() Node               { return n.of }
func (n *PointerToMemberNode) SetOf(o Node)           { n.of = o }
func (n *PointerToMemberNode) Accept(v Visitor) error { return v.VisitPointerToMember(n) }
func (n *PointerToMemberNode) Equal(o Node) bool {
	other, ok := o.(*PointerToMemberNode)
	return ok && typesEqual(n, other) && n.Class.Equal(other.Class) && nodeEqual(n.of, other.of)
}

// ArrayNode is an array declarator (§3.4).
type ArrayNode struct {
	base
	of        Node
	SizeKind  ArraySizeKind
	Size      int    // valid when SizeKind == ArraySizeInt
	SizeName  string // valid when SizeKind == ArraySizeNamed
}

func NewArray(arena *Arena, depth int, rg Range) *ArrayNode {
	n := &ArrayNode{base: newBase(arena, KArray, depth, rg)}
	arena.register(n)
	return n
}
func (n *ArrayNode) Of() Node               { return n.of }
func (n *ArrayNode) SetOf(o Node)           { n.of = o }
func (n *ArrayNode) Accept(v Visitor) error { return v.VisitArray(n) }
func (n *ArrayNode) Equal(o Node) bool {
	other, ok := o.(*ArrayNode)
	return ok && typesEqual(n, other) && n.SizeKind == other.SizeKind &&
		n.Size == other.Size && n.SizeName == other.SizeName && nodeEqual(n.of, other.of)
}

// FunctionNode is a free or member function (§3.4).
type FunctionNode struct {
	base
	of       Node
	Params   []Node
	IsMember bool
}

func NewFunction(arena *Arena, depth int, rg Range) *FunctionNode {
	n := &FunctionNode{base: newBase(arena, KFunction, depth, rg)}
	arena.register(n)
	return n
}
func (n *FunctionNode) Of() Node               { return n.of }
func (n *FunctionNode) SetOf(o Node)           { n.of = o }
func (n *FunctionNode) Accept(v Visitor) error { return v.VisitFunction(n) }
func (n *FunctionNode) Equal(o Node) bool {
	other, ok := o.(*FunctionNode)
	return ok && typesEqual(n, other) && n.IsMember == other.IsMember &&
		nodeEqual(n.of, other.of) && paramsEqual(n.Params, other.Params)
}

// AppleBlockNode is an Apple `^`-block (§3.4).
type AppleBlockNode struct {
	base
	of     Node
	Params []Node
}

func NewAppleBlock(arena *Arena, depth int, rg Range) *AppleBlockNode {
	n := &AppleBlockNode{base: newBase(arena, KAppleBlock, depth, rg)}
	arena.register(n)
	return n
}
func (n *AppleBlockNode) Of() Node               { return n.of }
func (n *AppleBlockNode) SetOf(o Node)           { n.of = o }
func (n *AppleBlockNode) Accept(v Visitor) error { return v.VisitAppleBlock(n) }
func (n *AppleBlockNode) Equal(o Node) bool {
	other, ok := o.(*AppleBlockNode)
	return ok && typesEqual(n, other) && nodeEqual(n.of, other.of) && paramsEqual(n.Params, other.Params)
}

// OperatorNode is an overloaded C++ operator (§3.4).
type OperatorNode struct {
	base
	of         Node
	OperatorID string
	Params     []Node
	IsMember   bool
}

func NewOperator(arena *Arena, depth int, rg Range) *OperatorNode {
	n := &OperatorNode{base: newBase(arena, KOperator, depth, rg)}
	arena.register(n)
	return n
}
func (n *OperatorNode) Of() Node               { return n.of }
func (n *OperatorNode) SetOf(o Node)           { n.of = o }
func (n *OperatorNode) Accept(v Visitor) error { return v.VisitOperator(n) }
func (n *OperatorNode) Equal(o Node) bool {
	other, ok := o.(*OperatorNode)
	return ok && typesEqual(n, other) && n.OperatorID == other.OperatorID &&
		n.IsMember == other.IsMember && nodeEqual(n.of, other.of) && paramsEqual(n.Params, other.Params)
}

// ConstructorNode / DestructorNode are C++ special member functions
// (§3.4); neither has a return type.
type ConstructorNode struct {
	base
	Params []Node
}

func NewConstructor(arena *Arena, depth int, rg Range) *ConstructorNode {
	n := &ConstructorNode{base: newBase(arena, KConstructor, depth, rg)}
	arena.register(n)
	return n
}
func (n *ConstructorNode) Accept(v Visitor) error { return v.VisitConstructor(n) }
func (n *ConstructorNode) Equal(o Node) bool {
	other, ok := o.(*ConstructorNode)
	return ok && typesEqual(n, other) && paramsEqual(n.Params, other.Params)
}

type DestructorNode struct{ base }

func NewDestructor(arena *Arena, depth int, rg Range) *DestructorNode {
	n := &DestructorNode{base: newBase(arena, KDestructor, depth, rg)}
	arena.register(n)
	return n
}
func (n *DestructorNode) Accept(v Visitor) error { return v.VisitDestructor(n) }
func (n *DestructorNode) Equal(o Node) bool {
	_, ok := o.(*DestructorNode)
	return ok && typesEqual(n, o.(*DestructorNode))
}

// UserDefinedConversionNode is `operator T()` (§3.4).
type UserDefinedConversionNode struct {
	base
	of Node
}

func NewUserDefinedConversion(arena *Arena, depth int, rg Range) *UserDefinedConversionNode {
	n := &UserDefinedConversionNode{base: newBase(arena, KUserDefinedConversion, depth, rg)}
	arena.register(n)
	return n
}
func (n *UserDefinedConversionNode) Of() Node               { return n.of }
func (n *UserDefinedConversionNode) SetOf(o Node)           { n.of = o }
func (n *UserDefinedConversionNode) Accept(v Visitor) error { return v.VisitUserDefinedConversion(n) }
func (n *UserDefinedConversionNode) Equal(o Node) bool {
	other, ok := o.(*UserDefinedConversionNode)
	return ok && typesEqual(n, other) && nodeEqual(n.of, other.of)
}

// UserDefinedLiteralNode is C++11 `operator"" _x` (§3.4).
type UserDefinedLiteralNode struct {
	base
	Params []Node
}

func NewUserDefinedLiteral(arena *Arena, depth int, rg Range) *UserDefinedLiteralNode {
	n := &UserDefinedLiteralNode{base: newBase(arena, KUserDefinedLiteral, depth, rg)}
	arena.register(n)
	return n
}
func (n *UserDefinedLiteralNode) Accept(v Visitor) error { return v.VisitUserDefinedLiteral(n) }
func (n *UserDefinedLiteralNode) Equal(o Node) bool {
	other, ok := o.(*UserDefinedLiteralNode)
	return ok && typesEqual(n, other) && paramsEqual(n.Params, other.Params)
}

// LambdaNode is a C++11 lambda (§3.4).
type LambdaNode struct {
	base
	of       Node
	Captures []Node
	Params   []Node
}

func NewLambda(arena *Arena, depth int, rg Range) *LambdaNode {
	n := &LambdaNode{base: newBase(arena, KLambda, depth, rg)}
	arena.register(n)
	return n
}
func (n *LambdaNode) Of() Node               { return n.of }
func (n *LambdaNode) SetOf(o Node)           { n.of = o }
func (n *LambdaNode) Accept(v Visitor) error { return v.VisitLambda(n) }
func (n *LambdaNode) Equal(o Node) bool {
	other, ok := o.(*LambdaNode)
	if !ok || !typesEqual(n, other) || !nodeEqual(n.of, other.of) || !paramsEqual(n.Params, other.Params) {
		return false
	}
	return paramsEqual(n.Captures, other.Captures)
}

// CaptureNode is a single lambda capture item (§3.4).
type CaptureNode struct {
	base
	CaptureKind CaptureKind
}

func NewCapture(arena *Arena, depth int, rg Range, ck CaptureKind) *CaptureNode {
	n := &CaptureNode{base: newBase(arena, KCapture, depth, rg), CaptureKind: ck}
	arena.register(n)
	return n
}
func (n *CaptureNode) Accept(v Visitor) error { return v.VisitCapture(n) }
func (n *CaptureNode) Equal(o Node) bool {
	other, ok := o.(*CaptureNode)
	return ok && n.CaptureKind == other.CaptureKind && n.sname.Equal(other.sname)
}

// StructuredBindingNode is C++17 `auto [a, b]` (§3.4).
type StructuredBindingNode struct {
	base
	Names []ScopedName
}

func NewStructuredBinding(arena *Arena, depth int, rg Range) *StructuredBindingNode {
	n := &StructuredBindingNode{base: newBase(arena, KStructuredBinding, depth, rg)}
	arena.register(n)
	return n
}
func (n *StructuredBindingNode) Accept(v Visitor) error { return v.VisitStructuredBinding(n) }
func (n *StructuredBindingNode) Equal(o Node) bool {
	other, ok := o.(*StructuredBindingNode)
	if !ok || len(n.Names) != len(other.Names) {
		return false
	}
	for i := range n.Names {
		if !n.Names[i].Equal(other.Names[i]) {
			return false
		}
	}
	return true
}

// CastNode is a C-style or named cast (§3.4).
type CastNode struct {
	base
	of       Node
	CastKind CastKind
}

func NewCast(arena *Arena, depth int, rg Range, ck CastKind) *CastNode {
	n := &CastNode{base: newBase(arena, KCast, depth, rg), CastKind: ck}
	arena.register(n)
	return n
}
func (n *CastNode) Of() Node               { return n.of }
func (n *CastNode) SetOf(o Node)           { n.of = o }
func (n *CastNode) Accept(v Visitor) error { return v.VisitCast(n) }
func (n *CastNode) Equal(o Node) bool {
	other, ok := o.(*CastNode)
	return ok && n.CastKind == other.CastKind && nodeEqual(n.of, other.of)
}

// ---- Equality helpers ----

func typesEqual(a, b Node) bool {
	aa, ba := a.Alignment(), b.Alignment()
	return TypeNormalize(a.Type()) == TypeNormalize(b.Type()) &&
		aa.Kind == ba.Kind && aa.Bytes == ba.Bytes && aa.SName.Equal(ba.SName) &&
		nodeEqual(aa.Type, ba.Type) && a.IsParamPack() == b.IsParamPack()
}

func nodeEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func paramsEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// DebugString renders n as an indented tree via the shared
// tree-printer, for troubleshooting and test failure messages; it is
// not one of the two surface pretty-printers (§4.5).
func DebugString(n Node) string {
	tp := newTreePrinter(func(_ string, nd Node) string {
		if nd == nil {
			return "<nil>"
		}
		label := fmt.Sprintf("%s<%d>", nd.Kind(), nd.ID())
		if s := nd.SName().String(); s != "" {
			label += " " + s
		}
		return label
	})
	dumpNode(tp, n)
	return tp.output.String()
}

func dumpNode(tp *treePrinter[Node], n Node) {
	tp.pwritel(tp.format("", n))
	if n == nil {
		return
	}
	tp.indent("  ")
	for _, c := range children(n) {
		dumpNode(tp, c)
	}
	tp.unindent()
}
