package lang

import (
	"strconv"
	"strings"
)

// Print returns the canonical form of e. Every compound node is fully
// parenthesized, so parsing the result yields a tree [Equal] to e.
func Print(e Expr) string {
	var sb strings.Builder

	printTo(&sb, e)

	return sb.String()
}

func printTo(sb *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Num:
		sb.WriteString(strconv.FormatInt(int64(e.Value), 10))
	case *Add:
		printBinary(sb, e.LHS, "+", e.RHS)
	case *Mult:
		printBinary(sb, e.LHS, "*", e.RHS)
	case *Var:
		sb.WriteString(e.Name)
	case *Let:
		sb.WriteString("(_let ")
		sb.WriteString(e.Name)
		sb.WriteByte('=')
		printTo(sb, e.Bound)
		sb.WriteString(" _in ")
		printTo(sb, e.Body)
		sb.WriteByte(')')
	case *Bool:
		sb.WriteString(boolKeyword(e.Value).String())
	case *Equals:
		printBinary(sb, e.LHS, "==", e.RHS)
	case *If:
		sb.WriteString("(_if ")
		printTo(sb, e.Cond)
		sb.WriteString(" _then ")
		printTo(sb, e.Then)
		sb.WriteString(" _else ")
		printTo(sb, e.Else)
		sb.WriteByte(')')
	case *Fun:
		sb.WriteString("(_fun (")
		sb.WriteString(e.Param)
		sb.WriteString(") ")
		printTo(sb, e.Body)
		sb.WriteByte(')')
	case *Call:
		printTo(sb, e.Callee)
		sb.WriteByte('(')
		printTo(sb, e.Arg)
		sb.WriteByte(')')
	default:
		sb.WriteString("<unknown>")
	}
}

func printBinary(sb *strings.Builder, lhs Expr, op string, rhs Expr) {
	sb.WriteByte('(')
	printTo(sb, lhs)
	sb.WriteString(op)
	printTo(sb, rhs)
	sb.WriteByte(')')
}

func boolKeyword(b bool) keyword {
	if b {
		return kwTrue
	}

	return kwFalse
}
