package calc

import (
	"iter"
	"strconv"
)

// Variable is a named binding in a symbol table.
type Variable struct {
	Name  string
	Value float64
	// Constant marks bindings whose value cannot change after declaration.
	Constant bool
}

// SymbolTable holds variable bindings in declaration order. Bindings are
// only ever added; there is no undeclare. It is not safe to use a
// SymbolTable concurrently.
type SymbolTable struct {
	vars []Variable
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Predefined creates a symbol table with the calculator's standard
// bindings: the constants pi and e and the mutable variable k.
func Predefined() *SymbolTable {
	st := NewSymbolTable()
	st.Define("pi", 3.1415926535, true)
	st.Define("e", 2.7182818284, true)
	st.Define("k", 1000, false)
	return st
}

// Value returns the value bound to name. The error is a *NameError if name
// is not declared.
func (st *SymbolTable) Value(name string) (float64, error) {
	for i := range st.vars {
		if st.vars[i].Name == name {
			return st.vars[i].Value, nil
		}
	}
	return 0, &NameError{Name: name}
}

// SetValue binds a new value to an already declared name. The error is a
// *ConstantError if the binding is constant, or a *NameError if name is not
// declared; assignment never declares.
func (st *SymbolTable) SetValue(name string, v float64) error {
	for i := range st.vars {
		if st.vars[i].Name != name {
			continue
		}
		if st.vars[i].Constant {
			return &ConstantError{Name: name}
		}
		st.vars[i].Value = v
		return nil
	}
	return &NameError{Name: name}
}

// IsDeclared reports whether name is bound in the table.
func (st *SymbolTable) IsDeclared(name string) bool {
	for i := range st.vars {
		if st.vars[i].Name == name {
			return true
		}
	}
	return false
}

// Define appends a new binding and returns its value. The error is a
// *RedeclaredError if name is already declared; declaration is one-shot per
// name.
func (st *SymbolTable) Define(name string, v float64, constant bool) (float64, error) {
	if st.IsDeclared(name) {
		return 0, &RedeclaredError{Name: name}
	}
	st.vars = append(st.vars, Variable{Name: name, Value: v, Constant: constant})
	return v, nil
}

// All yields the (name, value) pairs of the table in declaration order.
func (st *SymbolTable) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for i := range st.vars {
			if !yield(st.vars[i].Name, st.vars[i].Value) {
				return
			}
		}
	}
}

// NameError is an error from a lookup or assignment naming a variable that
// is not declared.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable " + strconv.Quote(err.Name)
}

// RedeclaredError is an error from declaring a name a second time.
type RedeclaredError struct {
	// Name is the name that was already declared.
	Name string
}

func (err *RedeclaredError) Error() string {
	return strconv.Quote(err.Name) + " declared twice"
}

// ConstantError is an error from assigning to a constant.
type ConstantError struct {
	// Name is the constant's name.
	Name string
}

func (err *ConstantError) Error() string {
	return "cannot assign to constant " + strconv.Quote(err.Name)
}
