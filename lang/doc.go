// Package lang implements MSDscript, a small expression language with
// integers, booleans, local bindings, conditionals, and first-class
// single-parameter functions with lexical scope.
//
// # Grammar
//
// Informal EBNF, lowest to highest precedence:
//
//	expr      → comparg ( '==' expr )?
//	comparg   → addend ( '+' comparg )?
//	addend    → multicand ( '*' addend )?
//	multicand → inner ( '(' expr ')' )*
//	inner     → number | '(' expr ')' | variable
//	          | '_let' variable '=' expr '_in' expr
//	          | '_true' | '_false'
//	          | '_if' expr '_then' expr '_else' expr
//	          | '_fun' '(' variable ')' expr
//	number    → '-'? digit+
//	variable  → letter+
//
// The operators ==, +, and * group to the right: 1+2+3 is 1+(2+3).
// Application groups to the left: f(1)(2) is (f(1))(2), and the argument's
// opening parenthesis must immediately follow the callee.
//
// # Evaluation
//
// Numbers are 32-bit and arithmetic wraps modulo 2^32. A _let binding is not
// visible in its own bound expression. Functions capture the environment in
// which they are evaluated:
//
//	e := lang.MustParse("_let x = 1 _in _fun (y) x + y")
//	f, _ := lang.Interp(e, nil)
//	v, _ := lang.CallValue(f, lang.NumVal(10)) // 11
//
// # Printing
//
// [Print] writes a fully parenthesized form that parses back to an equal
// tree. [PrettyPrint] omits redundant parentheses and lays out _let, _if,
// and _fun on aligned lines:
//
//	_let f = _fun (x)
//	           x * x
//	_in  f(3)
package lang
