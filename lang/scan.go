package lang

import (
	"log/slog"
	"strconv"
)

// Position identifies a location in source text.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number, starting at 1
}

func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// keyword is a reserved word introduced by an underscore.
type keyword string

const (
	kwLet   keyword = "let"
	kwIn    keyword = "in"
	kwTrue  keyword = "true"
	kwFalse keyword = "false"
	kwIf    keyword = "if"
	kwThen  keyword = "then"
	kwElse  keyword = "else"
	kwFun   keyword = "fun"
)

func (k keyword) String() string { return "_" + string(k) }

// Keywords returns every reserved word with its leading underscore.
func Keywords() []string {
	return []string{
		kwLet.String(), kwIn.String(),
		kwIf.String(), kwThen.String(), kwElse.String(),
		kwTrue.String(), kwFalse.String(),
		kwFun.String(),
	}
}

// scanner is a forward-only cursor over source bytes.
//
// The language is ASCII-only, so each byte is one column.
type scanner struct {
	input []byte
	pos   int
	line  int
	col   int
}

func newScanner(s string) scanner {
	return scanner{input: []byte(s), line: 1, col: 1}
}

// peek returns the current byte, or 0 at end of input.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}

	return s.input[s.pos]
}

// peekAt returns the byte n positions past the current one, or 0.
func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}

	return s.input[s.pos+n]
}

func (s *scanner) advance() {
	if s.eof() {
		return
	}

	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.pos++
}

// expect consumes ch if it is the current byte.
func (s *scanner) expect(ch byte) bool {
	if s.peek() == ch {
		s.advance()

		return true
	}

	return false
}

// consume consumes ch or fails with a parse error naming it.
func (s *scanner) consume(ch byte) error {
	pos := s.position()
	if !s.expect(ch) {
		return s.unexpected(pos, strconv.QuoteRune(rune(ch)))
	}

	return nil
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) position() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.col,
	}
}

func (s *scanner) skipWhitespace() {
	for !s.eof() && isSpace(s.peek()) {
		s.advance()
	}
}

// peekKeyword identifies the keyword starting at the current byte, which
// follows an already consumed underscore. Only the leading letters needed to
// tell the keywords apart are examined; nothing is consumed.
func (s *scanner) peekKeyword() (keyword, bool) {
	switch s.peek() {
	case 'l':
		return kwLet, true
	case 'i':
		if s.peekAt(1) == 'n' {
			return kwIn, true
		}

		return kwIf, true
	case 't':
		if s.peekAt(1) == 'h' {
			return kwThen, true
		}

		return kwTrue, true
	case 'e':
		return kwElse, true
	case 'f':
		if s.peekAt(1) == 'a' {
			return kwFalse, true
		}

		return kwFun, true
	}

	return "", false
}

// consumeKeyword consumes the letters of kw, which must not be followed by
// another letter.
func (s *scanner) consumeKeyword(kw keyword) error {
	pos := s.position()

	for i := range len(kw) {
		if !s.expect(kw[i]) {
			return s.unexpected(pos, strconv.Quote(kw.String()))
		}
	}

	if isAlpha(s.peek()) {
		return ErrParse.WithPosition(pos).
			Wrap(errUnknownKeyword).
			With(slog.String("keyword", kw.String()))
	}

	return nil
}

// keyword consumes an underscore and the keyword kw, skipping any leading
// whitespace.
func (s *scanner) keyword(kw keyword) error {
	s.skipWhitespace()

	pos := s.position()
	if !s.expect('_') {
		return s.unexpected(pos, strconv.Quote(kw.String()))
	}

	return s.consumeKeyword(kw)
}

// name consumes a run of letters. The run must be non-empty and must not be
// followed by an underscore or hyphen.
func (s *scanner) name() (string, error) {
	pos := s.position()
	start := s.pos

	for isAlpha(s.peek()) {
		s.advance()
	}

	if s.pos == start {
		return "", s.unexpected(pos, "variable name")
	}

	if c := s.peek(); c == '_' || c == '-' {
		return "", ErrParse.WithPosition(s.position()).
			Wrap(errInvalidName).
			With(slog.String("name", string(s.input[start:s.pos])))
	}

	return string(s.input[start:s.pos]), nil
}

// unexpected reports that want was expected at pos.
func (s *scanner) unexpected(pos Position, want string) *Error {
	found := "end of input"
	if pos.Offset < len(s.input) {
		found = strconv.QuoteRune(rune(s.input[pos.Offset]))
	}

	return ErrParse.WithPosition(pos).
		Wrap(&expectedError{want: want, found: found}).
		With(
			slog.String("expected", want),
			slog.String("found", found),
		)
}

// isSpace matches the C locale's isspace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
