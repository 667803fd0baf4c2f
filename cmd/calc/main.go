// Command calc is an interactive expression calculator.
//
// It reads statements from standard input (or a file given with -in) and
// prints each result. The prompt and result prefix can be overridden with
// the CALC_PROMPT and CALC_RESULT environment variables; CALC_QUIET
// suppresses the startup banner.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		verb   string
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting verb")
	flag.Parse()

	in := os.Stdin
	interactive := isTTY(os.Stdin.Fd())
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
		interactive = false
	}

	prompt := env.Str("CALC_PROMPT", "> ")
	verb = env.Str("CALC_RESULT", "= ") + verb + "\n"
	if interactive && !env.Bool("CALC_QUIET") {
		fmt.Println("Welcome to Simple Calc.")
		fmt.Println("Enter 'help' to learn how to use this program.")
		fmt.Println()
	}

	syms := calc.Predefined()
	ts := calc.NewTokenStream(bufio.NewReader(in))
	for {
		if interactive {
			fmt.Print(prompt)
		}
		t, err := ts.Get()
		for err == nil && t.Kind == calc.TokPrint {
			// Discard pending statement terminators.
			t, err = ts.Get()
		}
		if err != nil {
			report(ts, err)
			continue
		}
		switch t.Kind {
		case calc.TokEOF, calc.TokQuit:
			return
		case calc.TokHelp:
			fmt.Print(helpText)
		case calc.TokSymbols:
			fmt.Println("\nSymbols:")
			for name, v := range syms.All() {
				fmt.Printf("%s\t%g\n", name, v)
			}
			fmt.Println()
		default:
			ts.Putback(t)
			v, err := calc.Statement(ts, syms)
			if err != nil {
				report(ts, err)
				continue
			}
			fmt.Printf(verb, v)
		}
	}
}

// report writes a statement error and resynchronizes to the next statement.
// Errors that do not come from the statement itself mean the input source
// failed, which is fatal.
func report(ts *calc.TokenStream, err error) {
	if !calc.IsInputError(err) {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	ts.Ignore(calc.TokPrint)
}

const helpText = `
Simple Calc Help

	Basic Syntax:
		Enter 'help' to see this message.
		Enter 'quit' or 'q' to exit the program.
		Enter ';' or a new line to print the results.
		Supported operands: '*', '/', '%', '!', '+', '-', '=' (assignment).
		Brackets and braces can be used to group expressions: '4*(2+3)'.

	Functions:
		sqrt(n)		square root of n.
		pow(n, e)	e power of n.

	User Variables:
		Variable names must be composed of alphanumerical characters and '_',
		and must start with an alphabetical character: 'a_var3', 'X', or 'y2'.
		let var = expr		declare a variable named var and initialize it
		# var = expr		with the evaluation value of expression expr.
		const var = expr	declare and initialize a constant named var.
		var = expr		assign a new value to previously declared var.
		Enter 'symbols' to see all variables in the program.

	Predefined Variables:
		pi		3.1415926535 (constant)
		e		2.7182818284 (constant)
		k		1000

`
