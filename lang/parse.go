package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
)

var (
	errUnknownKeyword    = errors.New("unknown keyword")
	errUnexpectedKeyword = errors.New("keyword cannot begin an expression")
	errInvalidName       = errors.New("variable name followed by '_' or '-'")
	errTrailingInput     = errors.New("unexpected input after expression")
)

// expectedError describes a token that was required but not found.
type expectedError struct {
	want  string
	found string
}

func (e *expectedError) Error() string {
	return "expected " + e.want + ", found " + e.found
}

// ParseReader parses an expression from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (Expr, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, string(data), opts...)
}

// Parse parses a single expression from s.
//
// Input remaining after a complete expression is ignored unless the
// [WithStrict] option is given.
func Parse(ctx context.Context, s string, opts ...Option) (Expr, error) {
	o := makeOptions(opts...)

	o.logger.TraceContext(ctx, "parse start", slog.Int("length", len(s)))

	p := &parser{scanner: newScanner(s)}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if o.strict {
		p.skipWhitespace()

		if !p.eof() {
			return nil, ErrParse.WithPosition(p.position()).Wrap(errTrailingInput)
		}
	}

	o.logger.TraceContext(ctx, "parse complete",
		slog.String("kind", e.Kind().String()),
		slog.Int("consumed", p.pos))

	return e, nil
}

// MustParse is like [Parse] but panics on error.
// It simplifies construction of fixed expressions.
func MustParse(s string) Expr {
	e, err := Parse(context.Background(), s)
	if err != nil {
		panic(err)
	}

	return e
}

// parser holds the parser state.
type parser struct {
	scanner
}

// parseExpr parses: comparg ('==' expr)?.
func (p *parser) parseExpr() (Expr, error) {
	lhs, err := p.parseComparg()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if p.peek() != '=' {
		return lhs, nil
	}

	pos := p.position()
	if p.peekAt(1) != '=' {
		return nil, p.unexpected(pos, strconv.Quote("=="))
	}

	p.advance()
	p.advance()

	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Equals{LHS: lhs, RHS: rhs}, nil
}

// parseComparg parses: addend ('+' comparg)?.
func (p *parser) parseComparg() (Expr, error) {
	lhs, err := p.parseAddend()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect('+') {
		return lhs, nil
	}

	rhs, err := p.parseComparg()
	if err != nil {
		return nil, err
	}

	return &Add{LHS: lhs, RHS: rhs}, nil
}

// parseAddend parses: multicand ('*' addend)?.
func (p *parser) parseAddend() (Expr, error) {
	lhs, err := p.parseMulticand()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if !p.expect('*') {
		return lhs, nil
	}

	rhs, err := p.parseAddend()
	if err != nil {
		return nil, err
	}

	return &Mult{LHS: lhs, RHS: rhs}, nil
}

// parseMulticand parses: inner ('(' expr ')')*.
//
// The opening parenthesis of an argument must immediately follow the callee.
func (p *parser) parseMulticand() (Expr, error) {
	e, err := p.parseInner()
	if err != nil {
		return nil, err
	}

	for p.expect('(') {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if err := p.consume(')'); err != nil {
			return nil, err
		}

		e = &Call{Callee: e, Arg: arg}
	}

	return e, nil
}

// parseInner parses a number, parenthesized expression, variable, boolean,
// or one of the keyword-introduced forms.
func (p *parser) parseInner() (Expr, error) {
	p.skipWhitespace()

	pos := p.position()

	switch c := p.peek(); {
	case c == '-' || isDigit(c):
		return p.parseNum()

	case c == '(':
		p.advance()

		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()

		if err := p.consume(')'); err != nil {
			return nil, err
		}

		return e, nil

	case isAlpha(c):
		name, err := p.name()
		if err != nil {
			return nil, err
		}

		return &Var{Name: name}, nil

	case c == '_':
		p.advance()

		kw, ok := p.peekKeyword()
		if !ok {
			return nil, ErrParse.WithPosition(pos).Wrap(errUnknownKeyword)
		}

		if err := p.consumeKeyword(kw); err != nil {
			return nil, err
		}

		switch kw {
		case kwLet:
			return p.parseLet()
		case kwTrue:
			return &Bool{Value: true}, nil
		case kwFalse:
			return &Bool{Value: false}, nil
		case kwIf:
			return p.parseIf()
		case kwFun:
			return p.parseFun()
		default:
			return nil, ErrParse.WithPosition(pos).
				Wrap(errUnexpectedKeyword).
				With(slog.String("keyword", kw.String()))
		}
	}

	return nil, p.unexpected(pos, "expression")
}

// parseNum parses: '-'? digit+.
//
// Digits accumulate modulo 2^32, the same as arithmetic on numbers.
func (p *parser) parseNum() (Expr, error) {
	negative := p.expect('-')

	if !isDigit(p.peek()) {
		return nil, p.unexpected(p.position(), "digit")
	}

	var n uint32
	for isDigit(p.peek()) {
		n = n*10 + uint32(p.peek()-'0')
		p.advance()
	}

	if negative {
		n = -n
	}

	return &Num{Value: int32(n)}, nil
}

// parseLet parses the remainder of: '_let' name '=' expr '_in' expr.
func (p *parser) parseLet() (Expr, error) {
	p.skipWhitespace()

	name, err := p.name()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if err := p.consume('='); err != nil {
		return nil, err
	}

	bound, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.keyword(kwIn); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Let{Name: name, Bound: bound, Body: body}, nil
}

// parseIf parses the remainder of: '_if' expr '_then' expr '_else' expr.
func (p *parser) parseIf() (Expr, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.keyword(kwThen); err != nil {
		return nil, err
	}

	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.keyword(kwElse); err != nil {
		return nil, err
	}

	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &If{Cond: cond, Then: then, Else: els}, nil
}

// parseFun parses the remainder of: '_fun' '(' name ')' expr.
func (p *parser) parseFun() (Expr, error) {
	p.skipWhitespace()

	if err := p.consume('('); err != nil {
		return nil, err
	}

	p.skipWhitespace()

	param, err := p.name()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if err := p.consume(')'); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Fun{Param: param, Body: body}, nil
}
