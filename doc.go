// Package calc implements an interactive expression calculator.
//
// Input is a sequence of statements separated by semicolons or newlines. A
// statement is a declaration ("let x = 2", "const y = 3"), an assignment to
// a previously declared variable ("x = x + 1"), or a bare expression with
// the usual precedence rules, postfix factorial, and the sqrt and pow
// functions. Parsing and evaluation are fused: each grammar level is a
// function that consumes tokens from a TokenStream, consults a SymbolTable,
// and returns a float64 or a typed error.
//
// Errors never terminate the stream. After reporting one, callers
// resynchronize with TokenStream.Ignore and continue with the next
// statement.
package calc
