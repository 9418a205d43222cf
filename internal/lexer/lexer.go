// Package lexer provides lexical analysis for CleanWorld source text. It
// transforms raw source into a stream of tokens consumed by the parser.
package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Error is a lexical diagnostic: an unrecognized character at a known
// location. Lexical errors are non-fatal; the scanner records them and
// resumes at the next character, so a single pass reports every bad
// character in the input.
type Error struct {
	// Line is the 1-based line of the offending character.
	Line int

	// Column is the 1-based column of the offending character.
	Column int

	// Char is the character that matched no token pattern.
	Char rune
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("line %d: unexpected character %q", e.Line, e.Char)
}

// Lexer scans CleanWorld source text. Matching is anchored at the current
// offset: a character that starts no token is itself a lexical error, never
// skipped over silently in search of a later match.
type Lexer struct {
	// source is the complete input. Whole-file scanning keeps lookahead and
	// line tracking trivial; CleanWorld programs are small.
	source string

	// start is the byte offset of the token currently being scanned.
	start int

	// current is the byte offset under examination.
	current int

	// line is the current 1-based line number.
	line int

	// lineStart is the byte offset where the current line began. Columns in
	// diagnostics are computed from it on demand.
	lineStart int

	// errs accumulates lexical diagnostics in source order.
	errs []Error
}

// New creates a Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
	}
}

// Scan tokenizes the entire input and returns the token stream together
// with any lexical diagnostics. The stream never contains an EOF token;
// diagnostics being non-empty does not invalidate the stream.
func (l *Lexer) Scan() ([]Token, []Error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, l.errs
}

// NextToken returns the next token, or a TokenEOF token once the input is
// exhausted. Unrecognized characters are recorded as diagnostics, which
// Scan returns, and skipped.
func (l *Lexer) NextToken() Token {
	for {
		l.skipBlanks()
		l.start = l.current

		if l.isAtEnd() {
			return Token{Type: TokenEOF, Line: l.line}
		}

		ch, _ := l.advance()

		if isLetter(ch) {
			return l.scanWord()
		}
		if isDigit(ch) {
			return l.scanInt()
		}

		switch ch {
		case '#':
			// Comment runs to end of line and produces no token.
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
			continue
		case '(':
			return l.makeToken(TokenLParen)
		case ')':
			return l.makeToken(TokenRParen)
		case '{':
			return l.makeToken(TokenLBrace)
		case '}':
			return l.makeToken(TokenRBrace)
		case ';':
			return l.makeToken(TokenSemicolon)
		case ':':
			return l.makeToken(TokenColon)
		case ',':
			return l.makeToken(TokenComma)
		case '+':
			return l.makeToken(TokenPlus)
		case '-':
			return l.makeToken(TokenMinus)
		case '*':
			return l.makeToken(TokenStar)
		case '/':
			return l.makeToken(TokenSlash)
		case '=':
			if l.match('=') {
				return l.makeToken(TokenEq)
			}
			return l.makeToken(TokenAssign)
		case '!':
			if l.match('=') {
				return l.makeToken(TokenNeq)
			}
			l.report(ch)
			continue
		case '<':
			if l.match('=') {
				return l.makeToken(TokenLe)
			}
			return l.makeToken(TokenLt)
		case '>':
			if l.match('=') {
				return l.makeToken(TokenGe)
			}
			return l.makeToken(TokenGt)
		case '"':
			tok, ok := l.scanString()
			if !ok {
				continue
			}
			return tok
		default:
			l.report(ch)
			continue
		}
	}
}

// skipBlanks consumes spaces, tabs, carriage returns and newlines. Newlines
// advance the line counter but produce no token.
func (l *Lexer) skipBlanks() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '\n':
			l.advance()
			l.line++
			l.lineStart = l.current
		default:
			return
		}
	}
}

// scanWord scans an identifier and classifies it against the keyword table.
func (l *Lexer) scanWord() Token {
	for !l.isAtEnd() && isWordChar(l.peek()) {
		l.advance()
	}
	word := l.source[l.start:l.current]
	return Token{Type: LookupKeyword(word), Lexeme: word, Line: l.line}
}

// scanInt scans a run of decimal digits.
func (l *Lexer) scanInt() Token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	return l.makeToken(TokenIntLit)
}

// scanString scans a string literal. The literal charset is restricted to
// letters, digits, underscore and space. On any other character before the
// closing quote the opening quote is reported as unrecognized and scanning
// resumes immediately after it, matching the anchored-pattern contract.
func (l *Lexer) scanString() (Token, bool) {
	// Opening quote already consumed; l.start points at it.
	pos := l.current
	for pos < len(l.source) {
		ch, size := utf8.DecodeRuneInString(l.source[pos:])
		if ch == '"' {
			l.current = pos + size
			return l.makeToken(TokenStringLit), true
		}
		if !isStringChar(ch) {
			break
		}
		pos += size
	}
	l.report('"')
	l.current = l.start + 1
	return Token{}, false
}

// makeToken builds a token from the current scan window.
func (l *Lexer) makeToken(tt TokenType) Token {
	return Token{
		Type:   tt,
		Lexeme: l.source[l.start:l.current],
		Line:   l.line,
	}
}

// report records a lexical diagnostic for the character at l.start.
func (l *Lexer) report(ch rune) {
	l.errs = append(l.errs, Error{
		Line:   l.line,
		Column: l.start - l.lineStart + 1,
		Char:   ch,
	})
}

func (l *Lexer) advance() (rune, int) {
	if l.isAtEnd() {
		return 0, 0
	}
	ch, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	return ch, size
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return ch
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() {
		return false
	}
	ch, size := utf8.DecodeRuneInString(l.source[l.current:])
	if ch != expected {
		return false
	}
	l.current += size
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isWordChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

func isStringChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == ' '
}
