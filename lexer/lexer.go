package lexer

import (
	"fmt"
	"strconv"

	"github.com/skx/sixc/stack"
	"github.com/skx/sixc/token"
)

// LexError describes a failure encountered while scanning source text.
// It carries the source position at which the failure was detected.
type LexError struct {
	Line    int
	Column  int
	Message string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// bracketPairs maps each closing bracket rune to the opener it must match.
var bracketPairs = map[rune]rune{
	')': '(',
	'}': '{',
}

// Lexer holds our object-state.
type Lexer struct {
	position     int    //current character position
	readPosition int    //next character position
	ch           rune   //current character
	characters   []rune //rune slice of input string

	line   int // current line, 1-indexed
	column int // current column of l.ch, 1-indexed
}

// New creates a Lexer instance from string input.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input), line: 1}
	l.readChar()
	return l
}

// Tokenize scans the whole of the input, returning every token up to
// and including EOF, or the first LexError encountered.
func Tokenize(input string) ([]token.Token, error) {
	if err := checkBrackets(input); err != nil {
		return nil, err
	}

	l := New(input)
	var tokens []token.Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, nil
}

// checkBrackets performs a single pass over the input validating that
// every "(" and "{" is eventually closed, and that every ")"/"}" closes
// the bracket that was most recently opened. This gives a clean
// "unbalanced brackets" LexError up-front instead of a confusing
// cascade of parser errors once a mismatch has thrown the recursive
// descent off track.
func checkBrackets(input string) error {
	openers := stack.New[rune]()

	line, column := 1, 0
	for _, ch := range input {
		column++
		if ch == '\n' {
			line++
			column = 0
			continue
		}

		switch ch {
		case '(', '{':
			openers.Push(ch)
		case ')', '}':
			top, err := openers.Pop()
			if err != nil {
				return &LexError{Line: line, Column: column, Message: fmt.Sprintf("unbalanced brackets: unexpected %q", ch)}
			}
			if top != bracketPairs[ch] {
				return &LexError{Line: line, Column: column, Message: fmt.Sprintf("unbalanced brackets: %q does not close %q", ch, top)}
			}
		}
	}

	if !openers.Empty() {
		unclosed, _ := openers.Peek()
		return &LexError{Line: line, Column: column, Message: fmt.Sprintf("unbalanced brackets: %q was never closed", unclosed)}
	}
	return nil
}

// readChar reads one character forward, tracking line/column.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = rune(0)
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// NextToken reads and returns the next token, skipping whitespace and
// comments.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()

	line, column := l.line, l.column

	switch l.ch {
	case rune(0):
		return token.Token{Type: token.EOF, Line: line, Column: column}, nil

	case ';':
		return l.oneCharTok(token.SEMI, line, column), nil
	case '(':
		return l.oneCharTok(token.LPAREN, line, column), nil
	case ')':
		return l.oneCharTok(token.RPAREN, line, column), nil
	case '{':
		return l.oneCharTok(token.LBRACE, line, column), nil
	case '}':
		return l.oneCharTok(token.RBRACE, line, column), nil
	case ',':
		return l.oneCharTok(token.COMMA, line, column), nil
	case '~':
		return l.oneCharTok(token.TILDE, line, column), nil

	case '+':
		return l.twoCharOr('+', token.INC, token.PLUS, line, column), nil
	case '-':
		return l.twoCharOr('-', token.DEC, token.MINUS, line, column), nil
	case '&':
		return l.twoCharOr('&', token.ANDAND, token.AMP, line, column), nil
	case '|':
		return l.twoCharOr('|', token.OROR, token.PIPE, line, column), nil
	case '^':
		return l.twoCharOr('^', token.XORXOR, token.CARET, line, column), nil
	case '=':
		return l.twoCharOr('=', token.EQ, token.ASSIGN, line, column), nil
	case '!':
		return l.twoCharOr('=', token.NEQ, token.BANG, line, column), nil
	case '<':
		if l.peekChar() == '<' {
			return l.twoChar(token.SHL, line, column), nil
		}
		return l.twoCharOr('=', token.LE, token.LT, line, column), nil
	case '>':
		if l.peekChar() == '>' {
			return l.twoChar(token.SHR, line, column), nil
		}
		return l.twoCharOr('=', token.GE, token.GT, line, column), nil

	default:
		if isDigit(l.ch) {
			return l.readNumberToken(line, column)
		}
		if isIdentifierStart(l.ch) {
			lit := l.readIdentifier()
			return token.Token{Type: token.LookupIdentifier(lit), Literal: lit, Line: line, Column: column}, nil
		}

		bad := l.ch
		l.readChar()
		return token.Token{}, &LexError{Line: line, Column: column, Message: fmt.Sprintf("unexpected character %q", bad)}
	}
}

// oneCharTok builds a single-character token and advances past it.
func (l *Lexer) oneCharTok(kind token.Type, line, column int) token.Token {
	tok := token.Token{Type: kind, Literal: string(l.ch), Line: line, Column: column}
	l.readChar()
	return tok
}

// twoCharOr matches the greedy two-character operator "<current><next>"
// when the character following l.ch equals next, falling back to the
// single-character kind otherwise. Multi-character operators are
// always tried before their single-character prefixes.
func (l *Lexer) twoCharOr(next rune, twoKind, oneKind token.Type, line, column int) token.Token {
	if l.peekChar() == next {
		return l.twoChar(twoKind, line, column)
	}
	return l.oneCharTok(oneKind, line, column)
}

// twoChar consumes the current and next character as a fixed
// two-character operator.
func (l *Lexer) twoChar(kind token.Type, line, column int) token.Token {
	first := l.ch
	l.readChar()
	lit := string(first) + string(l.ch)
	l.readChar()
	return token.Token{Type: kind, Literal: lit, Line: line, Column: column}
}

// skipWhitespaceAndComments consumes whitespace and "//" line comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for isWhitespace(l.ch) {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != rune(0) {
				l.readChar()
			}
			continue
		}
		break
	}
}

// readNumberToken reads a decimal integer literal, validating that it
// fits within an unsigned 8-bit value.
func (l *Lexer) readNumberToken(line, column int) (token.Token, error) {
	lit := l.readNumber()

	n, err := strconv.Atoi(lit)
	if err != nil || n < 0 || n > 255 {
		return token.Token{}, &LexError{Line: line, Column: column, Message: fmt.Sprintf("integer literal %q out of range 0..255", lit)}
	}

	return token.Token{Type: token.NUMBER, Literal: lit, Line: line, Column: column}, nil
}

// readNumber handles reading a number, comprising of digits 0-9.
func (l *Lexer) readNumber() string {
	str := ""
	for isDigit(l.ch) {
		str += string(l.ch)
		l.readChar()
	}
	return str
}

// readIdentifier reads an identifier or keyword: [A-Za-z_][A-Za-z0-9_]*
func (l *Lexer) readIdentifier() string {
	id := ""
	for isIdentifierPart(l.ch) {
		id += string(l.ch)
		l.readChar()
	}
	return id
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.characters) {
		return rune(0)
	}
	return l.characters[l.readPosition]
}

// is white space
func isWhitespace(ch rune) bool {
	return ch == rune(' ') || ch == rune('\t') || ch == rune('\n') || ch == rune('\r')
}

// is Digit
func isDigit(ch rune) bool {
	return rune('0') <= ch && ch <= rune('9')
}

func isIdentifierStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentifierPart(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}
