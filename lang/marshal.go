package lang

// ToMap converts e to nested maps keyed by field name. Each map records the
// variant under "kind".
func ToMap(e Expr) map[string]any {
	m := map[string]any{"kind": e.Kind().String()}

	switch e := e.(type) {
	case *Num:
		m["value"] = e.Value
	case *Bool:
		m["value"] = e.Value
	case *Var:
		m["name"] = e.Name
	case *Add:
		m["lhs"], m["rhs"] = ToMap(e.LHS), ToMap(e.RHS)
	case *Mult:
		m["lhs"], m["rhs"] = ToMap(e.LHS), ToMap(e.RHS)
	case *Equals:
		m["lhs"], m["rhs"] = ToMap(e.LHS), ToMap(e.RHS)
	case *Let:
		m["name"] = e.Name
		m["bound"] = ToMap(e.Bound)
		m["body"] = ToMap(e.Body)
	case *If:
		m["cond"] = ToMap(e.Cond)
		m["then"] = ToMap(e.Then)
		m["else"] = ToMap(e.Else)
	case *Fun:
		m["param"] = e.Param
		m["body"] = ToMap(e.Body)
	case *Call:
		m["callee"] = ToMap(e.Callee)
		m["arg"] = ToMap(e.Arg)
	}

	return m
}
