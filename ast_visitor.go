package cdecl

// Visitor is implemented by consumers that need kind-specific
// dispatch over the declarator AST (pretty-printers, the validator,
// the macro-aware dumper). Each Visit* method returns an error to
// abort the walk early; a nil error continues it.
type Visitor interface {
	VisitPlaceholder(*PlaceholderNode) error
	VisitBuiltin(*BuiltinNode) error
	VisitTypedefRef(*TypedefRefNode) error
	VisitEnum(*EnumNode) error
	VisitRecord(*RecordNode) error
	VisitConcept(*ConceptNode) error
	VisitName(*NameNode) error
	VisitVariadic(*VariadicNode) error
	VisitPointer(*PointerNode) error
	VisitReference(*ReferenceNode) error
	VisitRValueRef(*RValueRefNode) error
	VisitPointerToMember(*PointerToMemberNode) error
	VisitArray(*ArrayNode) error
	VisitFunction(*FunctionNode) error
	VisitAppleBlock(*AppleBlockNode) error
	VisitOperator(*OperatorNode) error
	VisitConstructor(*ConstructorNode) error
	VisitDestructor(*DestructorNode) error
	VisitUserDefinedConversion(*UserDefinedConversionNode) error
	VisitUserDefinedLiteral(*UserDefinedLiteralNode) error
	VisitLambda(*LambdaNode) error
	VisitCapture(*CaptureNode) error
	VisitStructuredBinding(*StructuredBindingNode) error
	VisitCast(*CastNode) error
}

// BaseVisitor gives every method a no-op body so a concrete visitor
// need only override the kinds it cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitPlaceholder(*PlaceholderNode) error                   { return nil }
func (BaseVisitor) VisitBuiltin(*BuiltinNode) error                           { return nil }
func (BaseVisitor) VisitTypedefRef(*TypedefRefNode) error                     { return nil }
func (BaseVisitor) VisitEnum(*EnumNode) error                                 { return nil }
func (BaseVisitor) VisitRecord(*RecordNode) error                            { return nil }
func (BaseVisitor) VisitConcept(*ConceptNode) error                          { return nil }
func (BaseVisitor) VisitName(*NameNode) error                                { return nil }
func (BaseVisitor) VisitVariadic(*VariadicNode) error                        { return nil }
func (BaseVisitor) VisitPointer(*PointerNode) error                          { return nil }
func (BaseVisitor) VisitReference(*ReferenceNode) error                      { return nil }
func (BaseVisitor) VisitRValueRef(*RValueRefNode) error                      { return nil }
func (BaseVisitor) VisitPointerToMember(*PointerToMemberNode) error          { return nil }
func (BaseVisitor) VisitArray(*ArrayNode) error                              { return nil }
func (BaseVisitor) VisitFunction(*FunctionNode) error                        { return nil }
func (BaseVisitor) VisitAppleBlock(*AppleBlockNode) error                    { return nil }
func (BaseVisitor) VisitOperator(*OperatorNode) error                        { return nil }
func (BaseVisitor) VisitConstructor(*ConstructorNode) error                  { return nil }
func (BaseVisitor) VisitDestructor(*DestructorNode) error                    { return nil }
func (BaseVisitor) VisitUserDefinedConversion(*UserDefinedConversionNode) error { return nil }
func (BaseVisitor) VisitUserDefinedLiteral(*UserDefinedLiteralNode) error    { return nil }
func (BaseVisitor) VisitLambda(*LambdaNode) error                            { return nil }
func (BaseVisitor) VisitCapture(*CaptureNode) error                          { return nil }
func (BaseVisitor) VisitStructuredBinding(*StructuredBindingNode) error      { return nil }
func (BaseVisitor) VisitCast(*CastNode) error                                { return nil }

// children returns n's immediate structural children in declaration
// order (the `of` link, parameters, captures), for Inspect. It is
// distinct from the parent/of back-pointer walk below: Inspect
// descends the tree a printer actually prints.
func children(n Node) []Node {
	switch t := n.(type) {
	case *TypedefRefNode:
		return nonNil(t.target)
	case *EnumNode:
		return nonNil(t.of)
	case *PointerNode:
		return nonNil(t.of)
	case *ReferenceNode:
		return nonNil(t.of)
	case *RValueRefNode:
		return nonNil(t.of)
	case *PointerToMemberNode:
		return nonNil(t.of)
	case *ArrayNode:
		return nonNil(t.of)
	case *FunctionNode:
		return append(nonNil(t.of), t.Params...)
	case *AppleBlockNode:
		return append(nonNil(t.of), t.Params...)
	case *OperatorNode:
		return append(nonNil(t.of), t.Params...)
	case *ConstructorNode:
		return t.Params
	case *UserDefinedConversionNode:
		return nonNil(t.of)
	case *UserDefinedLiteralNode:
		return t.Params
	case *LambdaNode:
		out := append([]Node{}, t.Captures...)
		out = append(out, nonNil(t.of)...)
		return append(out, t.Params...)
	case *CastNode:
		return nonNil(t.of)
	default:
		return nil
	}
}

func nonNil(n Node) []Node {
	if n == nil {
		return nil
	}
	return []Node{n}
}

// Inspect walks n and its structural children pre-order, calling fn on
// each node. fn returning false prunes that subtree.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range children(n) {
		Inspect(c, fn)
	}
}

// VisitDir selects the back-pointer walk direction for Walk.
type VisitDir int

const (
	DirDown VisitDir = iota // follow `of` through parent-kind referrers
	DirUp                   // follow parent_ast
)

// Walk starts at n and repeatedly follows dir, calling fn at each
// node including n itself; it stops at (and returns) the first node
// for which fn returns true, or returns nil if the walk runs off the
// end without a match.
func Walk(n Node, dir VisitDir, fn func(Node) bool) Node {
	cur := n
	for cur != nil {
		if fn(cur) {
			return cur
		}
		switch dir {
		case DirDown:
			r, ok := cur.(Referrer)
			if !ok || !isParentKind(cur.Kind()) {
				return nil
			}
			cur = r.Of()
		case DirUp:
			cur = cur.Parent()
		}
	}
	return nil
}
