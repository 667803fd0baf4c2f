package calc

import (
	"errors"
	"testing"
)

func TestDefineAndValue(t *testing.T) {
	st := NewSymbolTable()
	if st.IsDeclared("x") {
		t.Error("x declared in empty table")
	}
	v, err := st.Define("x", 4, false)
	if err != nil {
		t.Fatal(err)
	}
	if v != 4 {
		t.Errorf("Define returned %g, want 4", v)
	}
	if !st.IsDeclared("x") {
		t.Error("x not declared after Define")
	}
	if v, err := st.Value("x"); err != nil || v != 4 {
		t.Errorf("Value(x) = %g, %v; want 4, nil", v, err)
	}
	if _, err := st.Value("y"); !errors.As(err, new(*NameError)) {
		t.Errorf("Value(y) error %#v is not a *NameError", err)
	}
}

func TestRedeclare(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", 1, false)
	_, err := st.Define("x", 2, false)
	if !errors.As(err, new(*RedeclaredError)) {
		t.Fatalf("redeclaring x gave %#v, not *RedeclaredError", err)
	}
	// The first binding is unaffected.
	if v, _ := st.Value("x"); v != 1 {
		t.Errorf("x = %g after failed redeclaration, want 1", v)
	}
}

func TestSetValue(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", 1, false)
	st.Define("c", 2, true)
	if err := st.SetValue("x", 10); err != nil {
		t.Fatal(err)
	}
	if v, _ := st.Value("x"); v != 10 {
		t.Errorf("x = %g after SetValue, want 10", v)
	}
	err := st.SetValue("c", 3)
	if !errors.As(err, new(*ConstantError)) {
		t.Fatalf("assigning to constant gave %#v, not *ConstantError", err)
	}
	if v, _ := st.Value("c"); v != 2 {
		t.Errorf("c = %g after failed assignment, want 2", v)
	}
	// Assignment never declares.
	if err := st.SetValue("y", 1); !errors.As(err, new(*NameError)) {
		t.Errorf("SetValue(y) error %#v is not a *NameError", err)
	}
	if st.IsDeclared("y") {
		t.Error("failed SetValue declared y")
	}
}

func TestAllOrder(t *testing.T) {
	st := NewSymbolTable()
	st.Define("b", 2, false)
	st.Define("a", 1, true)
	st.Define("c", 3, false)
	var names []string
	var values []float64
	for name, v := range st.All() {
		names = append(names, name)
		values = append(values, v)
	}
	want := []string{"b", "a", "c"}
	if len(names) != len(want) {
		t.Fatalf("All yielded %d pairs, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("All order: names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	for i, v := range []float64{2, 1, 3} {
		if values[i] != v {
			t.Errorf("All order: values[%d] = %g, want %g", i, values[i], v)
		}
	}
}

func TestPredefined(t *testing.T) {
	st := Predefined()
	cases := []struct {
		name     string
		value    float64
		constant bool
	}{
		{"pi", 3.1415926535, true},
		{"e", 2.7182818284, true},
		{"k", 1000, false},
	}
	for _, c := range cases {
		v, err := st.Value(c.name)
		if err != nil {
			t.Errorf("%s not predefined: %v", c.name, err)
			continue
		}
		if v != c.value {
			t.Errorf("%s = %g, want %g", c.name, v, c.value)
		}
		err = st.SetValue(c.name, 1)
		if c.constant && !errors.As(err, new(*ConstantError)) {
			t.Errorf("%s should be constant, SetValue gave %v", c.name, err)
		}
		if !c.constant && err != nil {
			t.Errorf("%s should be mutable, SetValue gave %v", c.name, err)
		}
	}
}
