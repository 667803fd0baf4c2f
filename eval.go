package calc

import (
	"math"
	"strconv"
	"strings"
)

// Statement = Declaration | Assignment | Expression
// Declaration = ("let" | "#" | "const") name "=" Expression
// Assignment = name "=" Expression
// Expression = Term { ("+" | "-") Term }
// Term = Secondary { ("*" | "/" | "%") Secondary }
// Secondary = Primary { "!" }
// Primary = number | name | "(" Expression ")" | "{" Expression "}"
//         | ("-" | "+") Primary
//         | "sqrt" "(" Expression ")" | "pow" "(" Expression "," Expression ")"

// Statement parses and evaluates exactly one statement from ts: a
// declaration, an assignment to a declared variable, or a bare expression.
// There is no AST; each grammar level evaluates as it parses, so side
// effects applied before an error stay applied. Errors propagate to the
// caller untouched, which resynchronizes with ts.Ignore(TokPrint) if it
// wants to continue.
func Statement(ts *TokenStream, syms *SymbolTable) (float64, error) {
	t, err := ts.Get()
	if err != nil {
		return 0, err
	}
	switch t.Kind {
	case TokConst:
		return declaration(ts, syms, true)
	case TokLet:
		return declaration(ts, syms, false)
	case TokName:
		// Two-token lookahead to tell an assignment from an expression
		// starting with a name. Putback is LIFO, so push the second token
		// first.
		t2, err := ts.Get()
		if err != nil {
			return 0, err
		}
		ts.Putback(t2)
		ts.Putback(t)
		if t2.Kind == TokAssign {
			return assignment(ts, syms)
		}
	default:
		ts.Putback(t)
	}
	return expression(ts, syms)
}

// EvalString evaluates a single statement against syms. Trailing input
// other than a statement terminator is an error.
func EvalString(src string, syms *SymbolTable) (float64, error) {
	ts := NewTokenStream(strings.NewReader(src))
	v, err := Statement(ts, syms)
	if err != nil {
		return 0, err
	}
	t, err := ts.Get()
	if err != nil {
		return 0, err
	}
	if t.Kind != TokPrint && t.Kind != TokEOF {
		return 0, &SyntaxError{Col: t.Col, Want: "end of statement"}
	}
	return v, nil
}

func declaration(ts *TokenStream, syms *SymbolTable, constant bool) (float64, error) {
	t, err := ts.Get()
	if err != nil {
		return 0, err
	}
	if t.Kind != TokName {
		return 0, &SyntaxError{Col: t.Col, Want: "name", In: "declaration"}
	}
	eq, err := ts.Get()
	if err != nil {
		return 0, err
	}
	if eq.Kind != TokAssign {
		return 0, &SyntaxError{Col: eq.Col, Want: "=", In: "declaration of " + t.Name}
	}
	v, err := expression(ts, syms)
	if err != nil {
		return 0, err
	}
	return syms.Define(t.Name, v, constant)
}

func assignment(ts *TokenStream, syms *SymbolTable) (float64, error) {
	t, err := ts.Get()
	if err != nil {
		return 0, err
	}
	if !syms.IsDeclared(t.Name) {
		return 0, &UndeclaredError{Name: t.Name}
	}
	if _, err := ts.Get(); err != nil { // skip the =
		return 0, err
	}
	v, err := expression(ts, syms)
	if err != nil {
		return 0, err
	}
	if err := syms.SetValue(t.Name, v); err != nil {
		return 0, err
	}
	return v, nil
}

func expression(ts *TokenStream, syms *SymbolTable) (float64, error) {
	left, err := term(ts, syms)
	if err != nil {
		return 0, err
	}
	for {
		t, err := ts.Get()
		if err != nil {
			return 0, err
		}
		switch t.Kind {
		case TokPlus:
			r, err := term(ts, syms)
			if err != nil {
				return 0, err
			}
			left += r
		case TokMinus:
			r, err := term(ts, syms)
			if err != nil {
				return 0, err
			}
			left -= r
		default:
			ts.Putback(t)
			return left, nil
		}
	}
}

func term(ts *TokenStream, syms *SymbolTable) (float64, error) {
	left, err := secondary(ts, syms)
	if err != nil {
		return 0, err
	}
	for {
		t, err := ts.Get()
		if err != nil {
			return 0, err
		}
		switch t.Kind {
		case TokStar:
			r, err := secondary(ts, syms)
			if err != nil {
				return 0, err
			}
			left *= r
		case TokSlash:
			r, err := secondary(ts, syms)
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, &DomainError{X: r, Func: "/"}
			}
			left /= r
		case TokPercent:
			r, err := secondary(ts, syms)
			if err != nil {
				return 0, err
			}
			if r == 0 {
				return 0, &DomainError{X: r, Func: "%"}
			}
			left = math.Mod(left, r)
		default:
			ts.Putback(t)
			return left, nil
		}
	}
}

func secondary(ts *TokenStream, syms *SymbolTable) (float64, error) {
	left, err := primary(ts, syms)
	if err != nil {
		return 0, err
	}
	for {
		t, err := ts.Get()
		if err != nil {
			return 0, err
		}
		if t.Kind != TokBang {
			ts.Putback(t)
			return left, nil
		}
		left, err = factorial(left)
		if err != nil {
			return 0, err
		}
	}
}

func primary(ts *TokenStream, syms *SymbolTable) (float64, error) {
	t, err := ts.Get()
	if err != nil {
		return 0, err
	}
	switch t.Kind {
	case TokLParen:
		v, err := expression(ts, syms)
		if err != nil {
			return 0, err
		}
		end, err := ts.Get()
		if err != nil {
			return 0, err
		}
		if end.Kind != TokRParen {
			return 0, unmatched(t, end)
		}
		return v, nil
	case TokLBrace:
		v, err := expression(ts, syms)
		if err != nil {
			return 0, err
		}
		end, err := ts.Get()
		if err != nil {
			return 0, err
		}
		if end.Kind != TokRBrace {
			return 0, unmatched(t, end)
		}
		return v, nil
	case TokSqrt, TokPow:
		return function(ts, syms, t)
	case TokNumber:
		return t.Value, nil
	case TokMinus:
		// Unary sign recurses into primary itself, so -2! is (-2)!.
		v, err := primary(ts, syms)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case TokPlus:
		return primary(ts, syms)
	case TokName:
		return syms.Value(t.Name)
	default:
		return 0, &SyntaxError{Col: t.Col, Want: "primary"}
	}
}

// function evaluates a call of one of the built-ins. The function keyword
// token has already been consumed.
func function(ts *TokenStream, syms *SymbolTable, f Token) (float64, error) {
	name := f.Kind.String()
	open, err := ts.Get()
	if err != nil {
		return 0, err
	}
	if open.Kind != TokLParen {
		return 0, &SyntaxError{Col: open.Col, Want: "(", In: name}
	}
	x, err := expression(ts, syms)
	if err != nil {
		return 0, err
	}
	switch f.Kind {
	case TokSqrt:
		end, err := ts.Get()
		if err != nil {
			return 0, err
		}
		if end.Kind != TokRParen {
			return 0, &SyntaxError{Col: end.Col, Want: ")", In: name}
		}
		if x < 0 {
			return 0, &DomainError{X: x, Func: name}
		}
		return math.Sqrt(x), nil
	case TokPow:
		sep, err := ts.Get()
		if err != nil {
			return 0, err
		}
		if sep.Kind != TokComma {
			return 0, &SyntaxError{Col: sep.Col, Want: ",", In: name}
		}
		y, err := expression(ts, syms)
		if err != nil {
			return 0, err
		}
		end, err := ts.Get()
		if err != nil {
			return 0, err
		}
		if end.Kind != TokRParen {
			return 0, &SyntaxError{Col: end.Col, Want: ")", In: name}
		}
		return math.Pow(x, y), nil
	}
	panic("calc: not a function token: " + f.String())
}

// unmatched builds the error for a grouping that did not close.
func unmatched(open, got Token) error {
	err := &BracketError{Col: got.Col, Open: open.Kind.String()}
	if got.Kind != TokEOF {
		err.Close = got.Kind.String()
	}
	return err
}

// factorial computes x! on the truncated integer value of x. Overflow is
// detected after each multiplication by checking that the product still
// divides exactly by its previous value.
func factorial(x float64) (float64, error) {
	n := int(x)
	if n < 0 {
		return 0, &FactorialError{X: x}
	}
	if n == 0 {
		n = 1
	}
	r := n
	for i := n - 1; i > 0; i-- {
		prev := r
		r *= i
		if prev != 0 && r/prev != i {
			return 0, &FactorialError{X: x, Overflow: true}
		}
	}
	return float64(r), nil
}

// UndeclaredError is an error from assigning to a name that has never been
// declared.
type UndeclaredError struct {
	// Name is the assignment target.
	Name string
}

func (err *UndeclaredError) Error() string {
	return strconv.Quote(err.Name) + " has not been declared"
}

// DomainError is an error from applying an operator or function to an
// operand outside its domain: a zero divisor or a negative square root
// argument.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Func is the operator or function applied to it: "/", "%", or "sqrt".
	Func string
}

func (err *DomainError) Error() string {
	switch err.Func {
	case "/":
		return "divide by zero"
	case "%":
		return "%: divide by zero"
	}
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

// FactorialError is an error from the postfix ! operator.
type FactorialError struct {
	// X is the operand, before truncation to integer.
	X float64
	// Overflow indicates that the running product stopped fitting in an
	// int; when false, the operand was negative.
	Overflow bool
}

func (err *FactorialError) Error() string {
	x := strconv.FormatFloat(err.X, 'g', -1, 64)
	if err.Overflow {
		return "overflow computing factorial of " + x
	}
	return "factorial of negative number " + x
}
