package eval

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"2+3", "5"},
		{"2+3*4", "14"},
		{"10/2+3", "8"},
		{"5-10", "-5"},
		{"2.5+4.75", "7.25"},
		{"0.1+0.2", "0.3"},
		{"(.5+.5)*4", "4"},
		{"3+-2", "1"},
		{"200*10%", "20"},
		{"50%", "0.5"},
		{"200/4/5", "10"},
		{"((2+3)*4)-5", "15"},
		{"5--3", "8"},
		{"12÷4", "3"},
		{"7×8-4", "52"},
		{"1.5×2.0", "3"},
		{"-.5+1", "0.5"},
		{"(((((1+1)))))", "2"},
		{"10-3*2+4/2", "6"},
		{"5-2+3-4+6", "8"},
		{"1 + 2", "3"},
		{"5−3", "2"},
	}
	for _, tc := range cases {
		got, err := Evaluate(tc.expr)
		if err != nil {
			t.Fatalf("Evaluate(%q) error = %v, want nil", tc.expr, err)
		}
		want, err := decimal.NewFromString(tc.want)
		if err != nil {
			t.Fatalf("bad want %q: %v", tc.want, err)
		}
		if !got.Equal(want) {
			t.Fatalf("Evaluate(%q) = %s, want %s", tc.expr, got, want)
		}
	}
}

func TestEvaluateOneThird(t *testing.T) {
	got, err := Evaluate("1/3")
	if err != nil {
		t.Fatalf("Evaluate(1/3) error = %v, want nil", err)
	}
	want, _ := decimal.NewFromString("0.3333333333333333333333333333")
	if !got.Equal(want) {
		t.Fatalf("Evaluate(1/3) = %s, want %s", got, want)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, expr := range []string{"0/0", "1/0", "5/(2-2)"} {
		_, err := Evaluate(expr)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("Evaluate(%q) error = %v, want ErrDivisionByZero", expr, err)
		}
	}
}

func TestEvaluateBadExpressions(t *testing.T) {
	for _, expr := range []string{"5++", "abc", "(1+2", "1//2", "", "1.2.3", "1+2)", "."} {
		_, err := Evaluate(expr)
		if !errors.Is(err, ErrBadExpression) {
			t.Fatalf("Evaluate(%q) error = %v, want ErrBadExpression", expr, err)
		}
	}
}
