package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is one lexical unit of calculator input. Value is set only for
// number tokens and Name only for name tokens.
type Token struct {
	Kind  TokenKind
	Value float64
	Name  string
	// Col is the rune position of the token in its line, starting at 1.
	Col int
}

func (t Token) String() string {
	switch t.Kind {
	case TokNumber:
		return "number:" + strconv.FormatFloat(t.Value, 'g', -1, 64) + "@" + strconv.Itoa(t.Col)
	case TokName:
		return "name:" + t.Name + "@" + strconv.Itoa(t.Col)
	}
	return t.Kind.String() + "@" + strconv.Itoa(t.Col)
}

// TokenKind classifies tokens.
type TokenKind int

const (
	TokNone TokenKind = iota
	// TokEOF indicates the end of the input.
	TokEOF
	// TokPrint is the statement terminator, ; or newline.
	TokPrint
	// TokNumber is a floating-point literal.
	TokNumber
	// TokName is a variable name.
	TokName
	// TokQuit, TokHelp and TokSymbols are the REPL commands.
	TokQuit
	TokHelp
	TokSymbols
	// TokLet and TokConst introduce declarations.
	TokLet
	TokConst
	// TokAssign is = in declarations and assignments.
	TokAssign
	// TokSqrt and TokPow are the built-in functions.
	TokSqrt
	TokPow
	TokLParen
	TokRParen
	TokLBrace
	TokRBrace
	TokComma
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokPercent
	TokBang
)

var kindNames = [...]string{
	TokNone:    "none",
	TokEOF:     "EOF",
	TokPrint:   ";",
	TokNumber:  "number",
	TokName:    "name",
	TokQuit:    "quit",
	TokHelp:    "help",
	TokSymbols: "symbols",
	TokLet:     "let",
	TokConst:   "const",
	TokAssign:  "=",
	TokSqrt:    "sqrt",
	TokPow:     "pow",
	TokLParen:  "(",
	TokRParen:  ")",
	TokLBrace:  "{",
	TokRBrace:  "}",
	TokComma:   ",",
	TokPlus:    "+",
	TokMinus:   "-",
	TokStar:    "*",
	TokSlash:   "/",
	TokPercent: "%",
	TokBang:    "!",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// punct maps the characters that form a token on their own. q is here
// rather than in keywords so that it quits as a single character, which
// also means no variable name may begin with q.
var punct = map[rune]TokenKind{
	'#': TokLet,
	'q': TokQuit,
	'=': TokAssign,
	'(': TokLParen,
	')': TokRParen,
	'{': TokLBrace,
	'}': TokRBrace,
	',': TokComma,
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'%': TokPercent,
	'!': TokBang,
}

// keywords are reserved words. The lexer intercepts them before they can
// become name tokens.
var keywords = map[string]TokenKind{
	"let":     TokLet,
	"const":   TokConst,
	"sqrt":    TokSqrt,
	"pow":     TokPow,
	"help":    TokHelp,
	"symbols": TokSymbols,
	"quit":    TokQuit,
}

// TokenStream produces Tokens from a character source. It is not safe to
// use a TokenStream concurrently.
type TokenStream struct {
	src io.RuneScanner
	// buf is the pushback stack. The most recently pushed token is read
	// first.
	buf []Token
	sb  strings.Builder
	col int
}

// NewTokenStream creates a token stream reading from src.
func NewTokenStream(src io.RuneScanner) *TokenStream {
	return &TokenStream{src: src}
}

// Putback pushes a token so that it is the next token returned from Get.
// It may be called any number of times before the next Get; tokens come
// back in reverse order of pushing.
func (ts *TokenStream) Putback(t Token) {
	ts.buf = append(ts.buf, t)
}

// readRune reads a rune from the source and updates the position info.
func (ts *TokenStream) readRune() (rune, error) {
	r, sz, err := ts.src.ReadRune()
	if sz > 0 {
		ts.col++
	}
	return r, err
}

// unreadRune unreads a rune from the source and updates the position info.
// Panics if unreading returns an error.
func (ts *TokenStream) unreadRune() {
	if err := ts.src.UnreadRune(); err != nil {
		panic(err)
	}
	ts.col--
}

// Get returns the next token. At the end of the input it returns an EOF
// token, idempotently. The error is a *LexError for invalid input text, or
// the underlying reader's error if reading fails outright.
func (ts *TokenStream) Get() (Token, error) {
	if n := len(ts.buf); n > 0 {
		t := ts.buf[n-1]
		ts.buf = ts.buf[:n-1]
		return t, nil
	}
	for {
		r, err := ts.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: TokEOF, Col: ts.col}, nil
			}
			return Token{}, err
		}
		col := ts.col
		switch {
		case r == '\n':
			// Positions restart on each line so that errors in a long
			// session stay meaningful.
			ts.col = 0
			return Token{Kind: TokPrint, Col: col}, nil
		case r == ';':
			return Token{Kind: TokPrint, Col: col}, nil
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			ts.unreadRune()
			return ts.scanNumber()
		}
		if k, ok := punct[r]; ok {
			return Token{Kind: k, Col: col}, nil
		}
		if unicode.IsLetter(r) {
			ts.unreadRune()
			return ts.scanName()
		}
		return Token{}, &LexError{Text: string(r), Col: col}
	}
}

// Ignore discards input up to and including the next token of the given
// kind, first from the pushback stack and then, if the stack holds no such
// token, from the raw character source. It is used to resynchronize to the
// next statement after an error.
func (ts *TokenStream) Ignore(kind TokenKind) {
	for len(ts.buf) > 0 {
		t := ts.buf[len(ts.buf)-1]
		ts.buf = ts.buf[:len(ts.buf)-1]
		if t.Kind == kind {
			return
		}
	}
	if kind != TokPrint {
		// Only the statement terminator has a character representation to
		// scan for.
		return
	}
	for {
		r, err := ts.readRune()
		if err != nil {
			return
		}
		if r == '\n' {
			ts.col = 0
			return
		}
		if r == ';' {
			return
		}
	}
}

// scanNumber scans a floating-point literal. The rune deciding number
// scanning has been unread, so the literal is at least one rune long.
func (ts *TokenStream) scanNumber() (Token, error) {
	defer ts.sb.Reset()
	col := ts.col + 1
	var dig, dot, exp, sign bool
	for {
		r, err := ts.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if r == '+' || r == '-' {
			// A sign is part of the literal only immediately after the
			// exponent marker; anywhere else it is an operator.
			if !sign {
				ts.unreadRune()
				break
			}
			sign = false
			ts.sb.WriteRune(r)
			continue
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
			sign = false
		case r == '.':
			if dot || exp {
				ts.sb.WriteRune(r)
				return Token{}, ts.numError(col)
			}
			dot = true
		case r == 'e' || r == 'E':
			if !dig || exp {
				ts.sb.WriteRune(r)
				return Token{}, ts.numError(col)
			}
			exp = true
			sign = true
		default:
			ts.unreadRune()
			goto done
		}
		ts.sb.WriteRune(r)
	}
done:
	text := ts.sb.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, ts.numError(col)
	}
	return Token{Kind: TokNumber, Value: v, Col: col}, nil
}

func (ts *TokenStream) numError(col int) error {
	return &LexError{Text: ts.sb.String(), Kind: "number", Col: col}
}

// scanName scans a name: an alphabetic rune followed by any number of
// alphanumeric runes and underscores. The first rune has been unread.
func (ts *TokenStream) scanName() (Token, error) {
	defer ts.sb.Reset()
	col := ts.col + 1
	for {
		r, err := ts.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			ts.sb.WriteRune(r)
			continue
		}
		ts.unreadRune()
		break
	}
	s := ts.sb.String()
	if k, ok := keywords[s]; ok {
		return Token{Kind: k, Col: col}, nil
	}
	return Token{Kind: TokName, Name: s, Col: col}, nil
}

// LexError indicates invalid input text.
type LexError struct {
	// Text is the text the lexer was scanning when it gave up.
	Text string
	// Kind is the type of token being scanned, "number" or the empty
	// string if no token kind had been decided.
	Kind string
	// Col is the rune position of the token in its line.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "bad token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "bad "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
