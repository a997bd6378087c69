package lang

// Kind identifies the variant of an [Expr].
type Kind int

const (
	KindNum    Kind = iota // num
	KindAdd                // add
	KindMult               // mult
	KindVar                // var
	KindLet                // let
	KindBool               // bool
	KindEquals             // equals
	KindIf                 // if
	KindFun                // fun
	KindCall               // call
)

func (k Kind) String() string {
	switch k {
	case KindNum:
		return "num"
	case KindAdd:
		return "add"
	case KindMult:
		return "mult"
	case KindVar:
		return "var"
	case KindLet:
		return "let"
	case KindBool:
		return "bool"
	case KindEquals:
		return "equals"
	case KindIf:
		return "if"
	case KindFun:
		return "fun"
	case KindCall:
		return "call"
	default:
		return "unknown"
	}
}

// Expr is a node of the abstract syntax tree.
//
// The set of variants is closed: every Expr is one of [*Num], [*Add],
// [*Mult], [*Var], [*Let], [*Bool], [*Equals], [*If], [*Fun], or [*Call].
// Nodes are never modified after construction, so subtrees may be shared.
type Expr interface {
	// Kind reports the variant of the node.
	Kind() Kind
	// String returns the canonical form, as by [Print].
	String() string

	expr()
}

// Num is an integer literal.
type Num struct {
	Value int32
}

// Add is the sum of two expressions.
type Add struct {
	LHS, RHS Expr
}

// Mult is the product of two expressions.
type Mult struct {
	LHS, RHS Expr
}

// Var is a reference to a bound name.
type Var struct {
	Name string
}

// Let binds Name to the value of Bound while evaluating Body.
// Bound is evaluated outside the scope of Name.
type Let struct {
	Name  string
	Bound Expr
	Body  Expr
}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

// Equals compares the values of two expressions.
type Equals struct {
	LHS, RHS Expr
}

// If selects Then or Else by the value of Cond.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Fun is a function of one parameter.
type Fun struct {
	Param string
	Body  Expr
}

// Call applies Callee to Arg.
type Call struct {
	Callee Expr
	Arg    Expr
}

func (*Num) Kind() Kind    { return KindNum }
func (*Add) Kind() Kind    { return KindAdd }
func (*Mult) Kind() Kind   { return KindMult }
func (*Var) Kind() Kind    { return KindVar }
func (*Let) Kind() Kind    { return KindLet }
func (*Bool) Kind() Kind   { return KindBool }
func (*Equals) Kind() Kind { return KindEquals }
func (*If) Kind() Kind     { return KindIf }
func (*Fun) Kind() Kind    { return KindFun }
func (*Call) Kind() Kind   { return KindCall }

func (e *Num) String() string    { return Print(e) }
func (e *Add) String() string    { return Print(e) }
func (e *Mult) String() string   { return Print(e) }
func (e *Var) String() string    { return Print(e) }
func (e *Let) String() string    { return Print(e) }
func (e *Bool) String() string   { return Print(e) }
func (e *Equals) String() string { return Print(e) }
func (e *If) String() string     { return Print(e) }
func (e *Fun) String() string    { return Print(e) }
func (e *Call) String() string   { return Print(e) }

func (*Num) expr()    {}
func (*Add) expr()    {}
func (*Mult) expr()   {}
func (*Var) expr()    {}
func (*Let) expr()    {}
func (*Bool) expr()   {}
func (*Equals) expr() {}
func (*If) expr()     {}
func (*Fun) expr()    {}
func (*Call) expr()   {}

// Equal reports whether a and b are structurally identical: the same variant
// with equal names, literals, and children.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *Num:
		b, ok := b.(*Num)

		return ok && a.Value == b.Value
	case *Add:
		b, ok := b.(*Add)

		return ok && Equal(a.LHS, b.LHS) && Equal(a.RHS, b.RHS)
	case *Mult:
		b, ok := b.(*Mult)

		return ok && Equal(a.LHS, b.LHS) && Equal(a.RHS, b.RHS)
	case *Var:
		b, ok := b.(*Var)

		return ok && a.Name == b.Name
	case *Let:
		b, ok := b.(*Let)

		return ok && a.Name == b.Name &&
			Equal(a.Bound, b.Bound) && Equal(a.Body, b.Body)
	case *Bool:
		b, ok := b.(*Bool)

		return ok && a.Value == b.Value
	case *Equals:
		b, ok := b.(*Equals)

		return ok && Equal(a.LHS, b.LHS) && Equal(a.RHS, b.RHS)
	case *If:
		b, ok := b.(*If)

		return ok && Equal(a.Cond, b.Cond) &&
			Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case *Fun:
		b, ok := b.(*Fun)

		return ok && a.Param == b.Param && Equal(a.Body, b.Body)
	case *Call:
		b, ok := b.(*Call)

		return ok && Equal(a.Callee, b.Callee) && Equal(a.Arg, b.Arg)
	default:
		return false
	}
}

// HasVariable reports whether e contains a [*Var] or a [*Fun] node.
// A function always counts, since its parameter names a variable.
func HasVariable(e Expr) bool {
	switch e := e.(type) {
	case *Num, *Bool:
		return false
	case *Var, *Fun:
		return true
	case *Add:
		return HasVariable(e.LHS) || HasVariable(e.RHS)
	case *Mult:
		return HasVariable(e.LHS) || HasVariable(e.RHS)
	case *Let:
		return HasVariable(e.Bound) || HasVariable(e.Body)
	case *Equals:
		return HasVariable(e.LHS) || HasVariable(e.RHS)
	case *If:
		return HasVariable(e.Cond) || HasVariable(e.Then) || HasVariable(e.Else)
	case *Call:
		return HasVariable(e.Callee) || HasVariable(e.Arg)
	default:
		return false
	}
}

// Subst returns e with each free occurrence of the variable name replaced by
// repl. A [*Let] binding name substitutes only in its bound expression, and a
// [*Fun] with parameter name is returned unchanged.
//
// Bound names are not renamed, so free variables of repl may be captured by
// an enclosing binder of a different name.
func Subst(e Expr, name string, repl Expr) Expr {
	switch e := e.(type) {
	case *Num, *Bool:
		return e
	case *Var:
		if e.Name == name {
			return repl
		}

		return e
	case *Add:
		return &Add{LHS: Subst(e.LHS, name, repl), RHS: Subst(e.RHS, name, repl)}
	case *Mult:
		return &Mult{LHS: Subst(e.LHS, name, repl), RHS: Subst(e.RHS, name, repl)}
	case *Let:
		body := e.Body
		if e.Name != name {
			body = Subst(body, name, repl)
		}

		return &Let{Name: e.Name, Bound: Subst(e.Bound, name, repl), Body: body}
	case *Equals:
		return &Equals{LHS: Subst(e.LHS, name, repl), RHS: Subst(e.RHS, name, repl)}
	case *If:
		return &If{
			Cond: Subst(e.Cond, name, repl),
			Then: Subst(e.Then, name, repl),
			Else: Subst(e.Else, name, repl),
		}
	case *Fun:
		if e.Param == name {
			return e
		}

		return &Fun{Param: e.Param, Body: Subst(e.Body, name, repl)}
	case *Call:
		return &Call{Callee: Subst(e.Callee, name, repl), Arg: Subst(e.Arg, name, repl)}
	default:
		return e
	}
}
