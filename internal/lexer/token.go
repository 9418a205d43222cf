package lexer

// TokenType identifies the lexical class of a token. An int-based enum keeps
// comparisons cheap and lets the parser dispatch with a switch.
type TokenType int

const (
	// TokenEOF marks the end of the input. It is produced by NextToken once
	// the source is exhausted and never appears inside a scanned stream.
	TokenEOF TokenType = iota

	// Keywords

	TokenGrid    // grid
	TokenProgram // program
	TokenConst   // const
	TokenVar     // var

	// Type keywords

	TokenTypeInt       // int
	TokenTypeBool      // bool
	TokenTypeDirection // direction

	// Control flow

	TokenWhile // while
	TokenIf    // if
	TokenElse  // else

	// Agent actions

	TokenMove      // move
	TokenTurnLeft  // turnLeft
	TokenTurnRight // turnRight
	TokenSense     // sense
	TokenClean     // clean

	// Literals

	TokenIntLit       // 42
	TokenBoolLit      // true, false
	TokenDirectionLit // north, south, east, west
	TokenStringLit    // "Kitchen"

	// Logical operators

	TokenAnd // and
	TokenOr  // or
	TokenNot // not

	// Relational operators

	TokenEq  // ==
	TokenNeq // !=
	TokenLe  // <=
	TokenGe  // >=
	TokenLt  // <
	TokenGt  // >

	// Arithmetic operators and assignment

	TokenAssign // =
	TokenPlus   // +
	TokenMinus  // -
	TokenStar   // *
	TokenSlash  // /

	// Delimiters

	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenSemicolon // ;
	TokenColon     // :
	TokenComma     // ,

	// TokenIdentifier is any name that is not a keyword or literal.
	TokenIdentifier
)

// Token is a single lexical unit. Tokens are value types: small, immutable
// after creation, and cheap to copy into the parser's token slice.
type Token struct {
	// Type is the lexical class of the token.
	Type TokenType

	// Lexeme is the exact source text of the token. String literals keep
	// their surrounding quotes.
	Lexeme string

	// Line is the 1-based source line the token starts on.
	Line int
}

// String renders the token as KIND(lexeme), the format used by the token
// stream dump and by parse error messages.
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ")"
}

// String returns the canonical name of the token type. The names double as
// the wire names in token stream dumps, so they must stay stable.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenGrid:
		return "GRID"
	case TokenProgram:
		return "PROGRAM"
	case TokenConst:
		return "CONST"
	case TokenVar:
		return "VAR"
	case TokenTypeInt:
		return "TYPE_INT"
	case TokenTypeBool:
		return "TYPE_BOOL"
	case TokenTypeDirection:
		return "TYPE_DIRECTION"
	case TokenWhile:
		return "WHILE"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenMove:
		return "MOVE"
	case TokenTurnLeft:
		return "TURN_LEFT"
	case TokenTurnRight:
		return "TURN_RIGHT"
	case TokenSense:
		return "SENSE"
	case TokenClean:
		return "CLEAN"
	case TokenIntLit:
		return "INT_LITERAL"
	case TokenBoolLit:
		return "BOOL_LITERAL"
	case TokenDirectionLit:
		return "DIRECTION_LITERAL"
	case TokenStringLit:
		return "STRING_LITERAL"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenEq:
		return "EQ"
	case TokenNeq:
		return "NEQ"
	case TokenLe:
		return "LE"
	case TokenGe:
		return "GE"
	case TokenLt:
		return "LT"
	case TokenGt:
		return "GT"
	case TokenAssign:
		return "ASSIGN"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "MUL"
	case TokenSlash:
		return "DIV"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenLBrace:
		return "LBRACE"
	case TokenRBrace:
		return "RBRACE"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenColon:
		return "COLON"
	case TokenComma:
		return "COMMA"
	case TokenIdentifier:
		return "ID"
	default:
		return "UNKNOWN"
	}
}

// keywords maps reserved words to their token types. Keyword recognition
// happens after an identifier is scanned, which gives every reserved word
// priority over the generic identifier class.
var keywords = map[string]TokenType{
	"grid":      TokenGrid,
	"program":   TokenProgram,
	"const":     TokenConst,
	"var":       TokenVar,
	"int":       TokenTypeInt,
	"bool":      TokenTypeBool,
	"direction": TokenTypeDirection,
	"while":     TokenWhile,
	"if":        TokenIf,
	"else":      TokenElse,
	"move":      TokenMove,
	"turnLeft":  TokenTurnLeft,
	"turnRight": TokenTurnRight,
	"sense":     TokenSense,
	"clean":     TokenClean,
	"true":      TokenBoolLit,
	"false":     TokenBoolLit,
	"north":     TokenDirectionLit,
	"south":     TokenDirectionLit,
	"east":      TokenDirectionLit,
	"west":      TokenDirectionLit,
	"and":       TokenAnd,
	"or":        TokenOr,
	"not":       TokenNot,
}

// LookupKeyword returns the keyword token type for an identifier, or
// TokenIdentifier if the word is not reserved.
func LookupKeyword(word string) TokenType {
	if tt, ok := keywords[word]; ok {
		return tt
	}
	return TokenIdentifier
}

// IsKeyword reports whether the token type is a reserved word.
func (tt TokenType) IsKeyword() bool {
	return (tt >= TokenGrid && tt <= TokenClean) || tt == TokenAnd || tt == TokenOr || tt == TokenNot
}

// IsLiteral reports whether the token type is a literal value.
func (tt TokenType) IsLiteral() bool {
	return tt >= TokenIntLit && tt <= TokenStringLit
}

// IsRelOp reports whether the token type is a relational operator.
func (tt TokenType) IsRelOp() bool {
	return tt >= TokenEq && tt <= TokenGt
}

// IsAction reports whether the token type is an agent action keyword.
func (tt TokenType) IsAction() bool {
	return tt >= TokenMove && tt <= TokenClean
}
