package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEvalString(f *testing.F) {
	f.Add("let x = 1")
	f.Add("2+3*4")
	f.Add("-2!")
	f.Add("pow(2,10); sqrt(9)")
	f.Add("{(1+2)*3}")
	f.Fuzz(func(t *testing.T, s string) {
		calc.EvalString(s, calc.Predefined())
	})
}
