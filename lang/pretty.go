package lang

import (
	"strconv"
	"strings"
)

// precedence orders how tightly a construct binds when pretty-printed.
type precedence int

const (
	precNone   precedence = iota // _let, _if, _fun
	precEquals                   // ==
	precAdd                      // +
	precMult                     // *
	precCall                     // callee of a function call
)

// PrettyPrint returns e formatted for reading. Redundant parentheses are
// omitted, and each _let, _if, and _fun spans multiple lines aligned to the
// column where its keyword begins. Parsing the result yields a tree [Equal]
// to e.
func PrettyPrint(e Expr) string {
	var pp prettyPrinter

	pp.expr(e, precNone)

	return pp.sb.String()
}

// prettyPrinter accumulates output and tracks the column the next byte will
// be written to.
type prettyPrinter struct {
	sb  strings.Builder
	col int
}

func (pp *prettyPrinter) write(s string) {
	pp.sb.WriteString(s)

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		pp.col = len(s) - i - 1
	} else {
		pp.col += len(s)
	}
}

// newline ends the current line and indents the next one to col.
func (pp *prettyPrinter) newline(col int) {
	pp.write("\n" + strings.Repeat(" ", col))
}

// expr writes e in a context that demands at least prec.
func (pp *prettyPrinter) expr(e Expr, prec precedence) {
	switch e := e.(type) {
	case *Num:
		pp.write(strconv.FormatInt(int64(e.Value), 10))
	case *Var:
		pp.write(e.Name)
	case *Bool:
		pp.write(boolKeyword(e.Value).String())
	case *Add:
		pp.binary(e.LHS, " + ", e.RHS, precAdd, prec)
	case *Mult:
		pp.binary(e.LHS, " * ", e.RHS, precMult, prec)
	case *Equals:
		pp.binary(e.LHS, " == ", e.RHS, precEquals, prec)
	case *Call:
		pp.expr(e.Callee, precCall)
		pp.write("(")
		pp.expr(e.Arg, precNone)
		pp.write(")")
	case *Let:
		pp.block(prec, func(col int) {
			pp.write("_let " + e.Name + " = ")
			pp.expr(e.Bound, precNone)
			pp.newline(col)
			pp.write("_in  ")
			pp.expr(e.Body, precNone)
		})
	case *If:
		pp.block(prec, func(col int) {
			pp.write("_if ")
			pp.expr(e.Cond, precNone)
			pp.newline(col)
			pp.write("_then ")
			pp.expr(e.Then, precNone)
			pp.newline(col)
			pp.write("_else ")
			pp.expr(e.Else, precNone)
		})
	case *Fun:
		pp.block(prec, func(col int) {
			pp.write("_fun (" + e.Param + ")")
			pp.newline(col + 2)
			pp.expr(e.Body, precNone)
		})
	default:
		pp.write("<unknown>")
	}
}

// binary writes an infix operator of precedence own. The left operand is
// written one level tighter since the operators group to the right.
func (pp *prettyPrinter) binary(lhs Expr, op string, rhs Expr, own, prec precedence) {
	paren := prec > own
	if paren {
		pp.write("(")
	}

	pp.expr(lhs, own+1)
	pp.write(op)
	pp.expr(rhs, own)

	if paren {
		pp.write(")")
	}
}

// block writes a keyword form that extends as far right as possible, so it
// is parenthesized in any context tighter than [precNone]. The body function
// receives the column of the keyword.
//
// A binder in the right operand of an operator is parenthesized too, even
// though nothing follows it there; precedence alone decides.
func (pp *prettyPrinter) block(prec precedence, body func(col int)) {
	paren := prec > precNone
	if paren {
		pp.write("(")
	}

	body(pp.col)

	if paren {
		pp.write(")")
	}
}
