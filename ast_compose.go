package cdecl

// SetParent installs parent.of_ast = child, and — only when parent's
// kind is a "parent" referrer, not a bare reference like typedef-ref —
// also installs child.parent_ast = parent and applies the
// parameter-pack bubble-up rule: a child still marked as a parameter
// pack whose new parent is not function-like hands the pack flag up
// to the parent instead (§4.1 set_parent).
func SetParent(child Node, parent Referrer) {
	parent.SetOf(child)
	if !isParentKind(parent.Kind()) {
		return
	}
	child.setParent(parent)
	if child.IsParamPack() && !isFunctionLikeKind(parent.Kind()) {
		child.SetParamPack(false)
		parent.SetParamPack(true)
	}
}

// ListSetParamOf marks every node in params as a parameter of fn,
// wiring both its parent_ast back-pointer and its param_of slot. It
// panics if a parameter is already owned by a different function,
// since the arena model gives every node exactly one owner.
func ListSetParamOf(params []Node, fn Node) {
	for _, p := range params {
		if existing := p.ParamOf(); existing != nil && existing != fn {
			panic("cdecl: parameter already owned by another function")
		}
		p.setParent(fn)
		p.setParamOf(fn)
	}
}

// attachLeaf walks root's `of` chain to the innermost open slot (the
// first referrer whose Of() is nil) and installs leaf there; if root
// itself is not a referrer (a bare base type), leaf becomes the new
// root and root becomes its Of.
func attachLeaf(root Node, leaf Referrer) Node {
	cur := root
	for {
		r, ok := cur.(Referrer)
		if !ok {
			SetParent(cur, leaf)
			return leaf
		}
		if r.Of() == nil {
			SetParent(leaf, r)
			return root
		}
		cur = r.Of()
	}
}

// AddArray appends arr at the innermost open declarator position of
// root, honoring C's "arrays and functions bind tighter than
// pointers" rule by always attaching at the leaf rather than the
// root (§4.1 add_array). It returns the (possibly new) root.
func AddArray(root Node, arr *ArrayNode) Node { return attachLeaf(root, arr) }

// AddFunc appends fn at the innermost open declarator position of
// root and wires fn.Params via ListSetParamOf (§4.1 add_func). It
// returns the (possibly new) root.
func AddFunc(root Node, fn *FunctionNode, params []Node) Node {
	fn.Params = params
	ListSetParamOf(params, fn)
	return attachLeaf(root, fn)
}

// PatchPlaceholder finds the first PlaceholderNode reachable from
// root (pre-order) and splices replacement into its place, returning
// the (possibly new) root (§4.1 patch_placeholder). It is a no-op,
// returning root unchanged, if root contains no placeholder.
func PatchPlaceholder(root Node, replacement Node) Node {
	var target *PlaceholderNode
	Inspect(root, func(n Node) bool {
		if target != nil {
			return false
		}
		if p, ok := n.(*PlaceholderNode); ok {
			target = p
		}
		return target == nil
	})
	if target == nil {
		return root
	}
	parent := target.Parent()
	if parent == nil {
		return replacement
	}
	replaceChild(parent, target, replacement)
	return root
}

func replaceChild(parent, oldChild, newChild Node) {
	switch p := parent.(type) {
	case *TypedefRefNode:
		p.target = newChild
	case *EnumNode:
		p.of = newChild
	case *PointerNode:
		p.of = newChild
	case *ReferenceNode:
		p.of = newChild
	case *RValueRefNode:
		p.of = newChild
	case *PointerToMemberNode:
		p.of = newChild
	case *ArrayNode:
		p.of = newChild
	case *FunctionNode:
		replaceOfOrSlice(&p.of, p.Params, oldChild, newChild)
	case *AppleBlockNode:
		replaceOfOrSlice(&p.of, p.Params, oldChild, newChild)
	case *OperatorNode:
		replaceOfOrSlice(&p.of, p.Params, oldChild, newChild)
	case *ConstructorNode:
		replaceInSlice(p.Params, oldChild, newChild)
	case *UserDefinedConversionNode:
		p.of = newChild
	case *UserDefinedLiteralNode:
		replaceInSlice(p.Params, oldChild, newChild)
	case *LambdaNode:
		switch {
		case p.of == oldChild:
			p.of = newChild
		default:
			replaceInSlice(p.Captures, oldChild, newChild)
			replaceInSlice(p.Params, oldChild, newChild)
		}
	case *CastNode:
		p.of = newChild
	}
	newChild.setParent(parent)
}

func replaceOfOrSlice(of *Node, params []Node, old, new Node) {
	if *of == old {
		*of = new
		return
	}
	replaceInSlice(params, old, new)
}

func replaceInSlice(s []Node, old, new Node) {
	for i, n := range s {
		if n == old {
			s[i] = new
			return
		}
	}
}

// Dup performs a structural deep copy of n into dst, preserving every
// parent-kind `of` link and recreating parent_ast back-pointers via
// SetParent; each new node's DupFrom points back at its source
// (§4.1 dup). Non-parent referrers (typedef-refs) are NOT recursed
// into: the referenced type AST is shared, matching the orphan-rooted
// typedef model (§9).
func Dup(n Node, dst *Arena) Node {
	if n == nil {
		return nil
	}
	switch t := n.(type) {
	case *PlaceholderNode:
		return dupBase(NewPlaceholder(dst, t.depth, t.rg), t)
	case *BuiltinNode:
		c := NewBuiltin(dst, t.depth, t.rg)
		c.BitWidth, c.BitIntWidth = t.BitWidth, t.BitIntWidth
		return dupBase(c, t)
	case *TypedefRefNode:
		c := NewTypedefRef(dst, t.depth, t.rg, t.target)
		c.BitWidth = t.BitWidth
		return dupBase(c, t)
	case *EnumNode:
		c := NewEnum(dst, t.depth, t.rg)
		c.BitWidth = t.BitWidth
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *RecordNode:
		return dupBase(NewRecord(dst, t.depth, t.rg, t.RecordKind), t)
	case *ConceptNode:
		return dupBase(NewConcept(dst, t.depth, t.rg), t)
	case *NameNode:
		return dupBase(NewName(dst, t.depth, t.rg), t)
	case *VariadicNode:
		return dupBase(NewVariadic(dst, t.depth, t.rg), t)
	case *PointerNode:
		c := NewPointer(dst, t.depth, t.rg)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *ReferenceNode:
		c := NewReference(dst, t.depth, t.rg)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *RValueRefNode:
		c := NewRValueRef(dst, t.depth, t.rg)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *PointerToMemberNode:
		c := NewPointerToMember(dst, t.depth, t.rg)
		c.Class = t.Class
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *ArrayNode:
		c := NewArray(dst, t.depth, t.rg)
		c.SizeKind, c.Size, c.SizeName = t.SizeKind, t.Size, t.SizeName
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *FunctionNode:
		c := NewFunction(dst, t.depth, t.rg)
		c.IsMember = t.IsMember
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		c.Params = dupParams(t.Params, dst, c)
		return dupBase(c, t)
	case *AppleBlockNode:
		c := NewAppleBlock(dst, t.depth, t.rg)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		c.Params = dupParams(t.Params, dst, c)
		return dupBase(c, t)
	case *OperatorNode:
		c := NewOperator(dst, t.depth, t.rg)
		c.OperatorID, c.IsMember = t.OperatorID, t.IsMember
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		c.Params = dupParams(t.Params, dst, c)
		return dupBase(c, t)
	case *ConstructorNode:
		c := NewConstructor(dst, t.depth, t.rg)
		c.Params = dupParams(t.Params, dst, c)
		return dupBase(c, t)
	case *DestructorNode:
		return dupBase(NewDestructor(dst, t.depth, t.rg), t)
	case *UserDefinedConversionNode:
		c := NewUserDefinedConversion(dst, t.depth, t.rg)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	case *UserDefinedLiteralNode:
		c := NewUserDefinedLiteral(dst, t.depth, t.rg)
		c.Params = dupParams(t.Params, dst, c)
		return dupBase(c, t)
	case *LambdaNode:
		c := NewLambda(dst, t.depth, t.rg)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		c.Params = dupParams(t.Params, dst, c)
		c.Captures = dupParams(t.Captures, dst, c)
		return dupBase(c, t)
	case *CaptureNode:
		return dupBase(NewCapture(dst, t.depth, t.rg, t.CaptureKind), t)
	case *StructuredBindingNode:
		c := NewStructuredBinding(dst, t.depth, t.rg)
		c.Names = append([]ScopedName(nil), t.Names...)
		return dupBase(c, t)
	case *CastNode:
		c := NewCast(dst, t.depth, t.rg, t.CastKind)
		if t.of != nil {
			SetParent(Dup(t.of, dst), c)
		}
		return dupBase(c, t)
	default:
		return nil
	}
}

func dupBase(c Node, orig Node) Node {
	c.SetSName(orig.SName())
	c.SetType(orig.Type())
	c.SetParamPack(orig.IsParamPack())
	c.SetAlignment(orig.Alignment())
	c.setDupFrom(orig)
	return c
}

func dupParams(params []Node, dst *Arena, owner Node) []Node {
	if params == nil {
		return nil
	}
	out := make([]Node, len(params))
	for i, p := range params {
		d := Dup(p, dst)
		d.setParent(owner)
		d.setParamOf(owner)
		out[i] = d
	}
	return out
}

// HasCycle walks n's parent_ast chain looking for a repeat, guarding
// the acyclicity invariant every composition operation above must
// preserve. It gives up after maxSteps links, so a genuine cycle cannot
// spin forever; a cycle longer than maxSteps is not reported.
func HasCycle(n Node, maxSteps int) bool {
	seen := make(map[Node]bool, maxSteps)
	cur := n
	for i := 0; i < maxSteps && cur != nil; i++ {
		if seen[cur] {
			return true
		}
		seen[cur] = true
		cur = cur.Parent()
	}
	return false
}
