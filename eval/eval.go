// Package eval evaluates arithmetic expressions over exact decimals.
//
// It implements a tokenizer, a shunting-yard parser, and a reverse polish
// notation interpreter so expressions never go anywhere near float64.
// Supported syntax: + - * / (also the display glyphs × ÷ −), postfix %,
// unary minus, and parentheses.
package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrBadExpression reports a syntactically invalid expression.
	ErrBadExpression = errors.New("bad expression")
	// ErrDivisionByZero reports a division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)

// divPrecision bounds the number of decimal places produced by division,
// mirroring a 28-digit decimal context.
const divPrecision = 28

// Div divides a by b at the evaluator's precision. A zero divisor is an
// error, never a panic.
func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return a.DivRound(b, divPrecision), nil
}

type opInfo struct {
	prec       int
	rightAssoc bool
	operands   int
}

// The unary-minus pseudo token "u-" is produced by the tokenizer; it never
// appears in input.
var operators = map[string]opInfo{
	"+":  {prec: 1, operands: 2},
	"-":  {prec: 1, operands: 2},
	"*":  {prec: 2, operands: 2},
	"/":  {prec: 2, operands: 2},
	"%":  {prec: 3, operands: 1},
	"u-": {prec: 4, rightAssoc: true, operands: 1},
}

var glyphs = strings.NewReplacer("×", "*", "÷", "/", "−", "-", " ", "")

// Evaluate parses and evaluates an arithmetic expression.
func Evaluate(expr string) (decimal.Decimal, error) {
	tokens, err := tokenize(glyphs.Replace(expr))
	if err != nil {
		return decimal.Zero, err
	}
	rpn, err := toRPN(tokens)
	if err != nil {
		return decimal.Zero, err
	}
	return evalRPN(rpn)
}

func isNumber(tok string) bool {
	if tok == "" || tok == "." {
		return false
	}
	if strings.Count(tok, ".") > 1 {
		return false
	}
	_, err := decimal.NewFromString(tok)
	return err == nil
}

func tokenize(expr string) ([]string, error) {
	var tokens []string
	runes := []rune(expr)
	for i := 0; i < len(runes); {
		ch := runes[i]
		switch {
		case ch >= '0' && ch <= '9' || ch == '.':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			tok := string(runes[start:i])
			if strings.Count(tok, ".") > 1 {
				return nil, fmt.Errorf("%w: invalid numeric literal %q", ErrBadExpression, tok)
			}
			tokens = append(tokens, tok)
		case strings.ContainsRune("+-*/()%", ch):
			tokens = append(tokens, string(ch))
			i++
		default:
			return nil, fmt.Errorf("%w: invalid character %q", ErrBadExpression, ch)
		}
	}
	return markUnaryMinus(tokens), nil
}

// markUnaryMinus rewrites "-" into the pseudo operator "u-" wherever it acts
// as a sign: at the start, after another operator, or after "(". Postfix "%"
// is transparent, so "50%-1" keeps its binary minus.
func markUnaryMinus(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	prev := ""
	first := true
	for _, tok := range tokens {
		if tok == "-" {
			_, afterOp := operators[prev]
			if first || afterOp || prev == "(" {
				tok = "u-"
			}
		}
		out = append(out, tok)
		if tok != "%" {
			prev = tok
			first = false
		}
	}
	return out
}

func toRPN(tokens []string) ([]string, error) {
	var output, stack []string
	for _, tok := range tokens {
		switch {
		case isNumber(tok):
			output = append(output, tok)
		case tok == "(":
			stack = append(stack, tok)
		case tok == ")":
			for len(stack) > 0 && stack[len(stack)-1] != "(" {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: mismatched parentheses", ErrBadExpression)
			}
			stack = stack[:len(stack)-1]
		default:
			op, ok := operators[tok]
			if !ok {
				return nil, fmt.Errorf("%w: unknown token %q", ErrBadExpression, tok)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				topInfo, isOp := operators[top]
				if !isOp {
					break
				}
				if (!op.rightAssoc && op.prec <= topInfo.prec) || (op.rightAssoc && op.prec < topInfo.prec) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == "(" || top == ")" {
			return nil, fmt.Errorf("%w: mismatched parentheses", ErrBadExpression)
		}
		output = append(output, top)
	}
	return output, nil
}

func evalRPN(tokens []string) (decimal.Decimal, error) {
	var stack []decimal.Decimal
	for _, tok := range tokens {
		if isNumber(tok) {
			d, err := decimal.NewFromString(tok)
			if err != nil {
				return decimal.Zero, fmt.Errorf("%w: %q", ErrBadExpression, tok)
			}
			stack = append(stack, d)
			continue
		}
		op, ok := operators[tok]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: unknown operator %q", ErrBadExpression, tok)
		}
		if len(stack) < op.operands {
			return decimal.Zero, fmt.Errorf("%w: insufficient operands", ErrBadExpression)
		}
		var result decimal.Decimal
		if op.operands == 1 {
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch tok {
			case "%":
				result, _ = Div(a, decimal.NewFromInt(100))
			case "u-":
				result = a.Neg()
			}
		} else {
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			switch tok {
			case "+":
				result = a.Add(b)
			case "-":
				result = a.Sub(b)
			case "*":
				result = a.Mul(b)
			case "/":
				var err error
				if result, err = Div(a, b); err != nil {
					return decimal.Zero, err
				}
			}
		}
		stack = append(stack, result)
	}
	if len(stack) != 1 {
		return decimal.Zero, fmt.Errorf("%w: malformed expression", ErrBadExpression)
	}
	return stack[0], nil
}
