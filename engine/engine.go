// Package engine implements the calculator state machine.
//
// The engine consumes normalized events one at a time and returns a display
// string after each one. It never panics and never returns an error across
// the engine/controller boundary: failures (division by zero, overflow) put
// it into an error state that shows "Error" and ignores everything except
// Clear.
package engine

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"neumo/eval"
)

// ErrOverflow reports a resolved result outside the displayable range.
var ErrOverflow = errors.New("overflow")

// maxEntryLen caps the entry at 16 digit/point characters, sign excluded.
const maxEntryLen = 16

// maxMagnitude is the smallest absolute value treated as overflow.
var maxMagnitude = decimal.New(1, 100)

// Phase names the engine's position in its state machine.
type Phase uint8

const (
	PhaseReady Phase = iota
	PhaseEnteringOperand
	PhaseOperatorPending
	PhaseError
)

// State is a read-only snapshot for rendering, e.g. to highlight the
// active operator.
type State struct {
	Entry       string
	Op          Op
	Accumulator decimal.Decimal
	Err         error
	Phase       Phase
}

// Engine holds the current operand text, the pending operator, and the
// accumulated result.
type Engine struct {
	entry  string // operand being typed; "" when untouched
	op     Op
	acc    decimal.Decimal
	err    error
	justEq bool // last event was Equals; next digit starts a fresh chain
	blank  bool // entry just cleared with CE: show "0" but stay untouched
}

// New returns an engine displaying "0" with no pending operator.
func New() *Engine {
	return &Engine{acc: decimal.Zero}
}

// Apply consumes one event and returns the resulting display string.
func (e *Engine) Apply(ev Event) string {
	if e.err != nil {
		if _, ok := ev.(Clear); ok {
			e.reset()
		}
		return e.Display()
	}
	switch ev := ev.(type) {
	case Digit:
		e.digit(ev.N)
	case DecimalPoint:
		e.decimalPoint()
	case Operator:
		e.operator(ev.Op)
	case Equals:
		e.equals()
	case Clear:
		e.reset()
	case ClearEntry:
		e.clearEntry()
	case Backspace:
		e.backspace()
	case ToggleSign:
		e.toggleSign()
	case Percent:
		e.percent()
	}
	return e.Display()
}

// Display returns the string the GUI should render right now.
func (e *Engine) Display() string {
	if e.err != nil {
		return "Error"
	}
	switch e.entry {
	case "":
		if e.blank {
			return "0"
		}
		return eval.Format(e.acc)
	case "-0", "-0.":
		// The sign stays on the entry; the screen never shows "-0".
		return "0"
	}
	return e.entry
}

// Snapshot returns a read-only copy of the engine state.
func (e *Engine) Snapshot() State {
	s := State{
		Entry:       e.entry,
		Op:          e.op,
		Accumulator: e.acc,
		Err:         e.err,
	}
	switch {
	case e.err != nil:
		s.Phase = PhaseError
	case e.op != OpNone:
		s.Phase = PhaseOperatorPending
	case e.entry != "" && !e.justEq:
		s.Phase = PhaseEnteringOperand
	default:
		s.Phase = PhaseReady
	}
	return s
}

func (e *Engine) reset() {
	*e = Engine{acc: decimal.Zero}
}

func (e *Engine) fail(err error) {
	e.err = err
	e.entry = ""
	e.op = OpNone
	e.justEq = false
	e.blank = false
}

// entryValue converts the entry text to a decimal. The entry is always
// engine-constructed, so malformed text cannot occur; a bare "", "-", or
// trailing point reads as zero-completed.
func (e *Engine) entryValue() decimal.Decimal {
	s := strings.TrimSuffix(e.entry, ".")
	if s == "" || s == "-" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (e *Engine) entryLen() int {
	return len(strings.TrimPrefix(e.entry, "-"))
}

// startFresh discards the finished chain when the user begins typing right
// after Equals.
func (e *Engine) startFresh() {
	if !e.justEq {
		return
	}
	e.entry = ""
	e.op = OpNone
	e.justEq = false
}

func (e *Engine) digit(n int) {
	if n < 0 || n > 9 {
		return
	}
	e.startFresh()
	e.blank = false
	if e.entryLen() >= maxEntryLen {
		return
	}
	d := byte('0' + n)
	switch e.entry {
	case "", "0":
		e.entry = string(d)
	case "-0", "-":
		e.entry = "-" + string(d)
	default:
		e.entry += string(d)
	}
}

func (e *Engine) decimalPoint() {
	e.startFresh()
	e.blank = false
	if strings.Contains(e.entry, ".") {
		return
	}
	if e.entryLen() >= maxEntryLen {
		return
	}
	switch e.entry {
	case "":
		e.entry = "0."
	case "-":
		e.entry = "-0."
	default:
		e.entry += "."
	}
}

func (e *Engine) operator(op Op) {
	if op == OpNone {
		return
	}
	e.justEq = false
	e.blank = false
	if e.entry != "" {
		v := e.entryValue()
		if e.op != OpNone {
			if err := e.resolve(v); err != nil {
				e.fail(err)
				return
			}
		} else {
			e.acc = v
		}
		e.entry = ""
	}
	// Entry untouched since the last operator: replace it instead of
	// resolving.
	e.op = op
}

func (e *Engine) equals() {
	e.blank = false
	if e.op != OpNone {
		if e.entry != "" {
			if err := e.resolve(e.entryValue()); err != nil {
				e.fail(err)
				return
			}
		}
		e.op = OpNone
	} else if e.entry != "" {
		e.acc = e.entryValue()
	}
	e.entry = eval.Format(e.acc)
	e.justEq = true
}

func (e *Engine) resolve(rhs decimal.Decimal) error {
	var r decimal.Decimal
	switch e.op {
	case OpAdd:
		r = e.acc.Add(rhs)
	case OpSub:
		r = e.acc.Sub(rhs)
	case OpMul:
		r = e.acc.Mul(rhs)
	case OpDiv:
		var err error
		if r, err = eval.Div(e.acc, rhs); err != nil {
			return err
		}
	default:
		return nil
	}
	if r.Abs().Cmp(maxMagnitude) >= 0 {
		return ErrOverflow
	}
	e.acc = r
	return nil
}

// clearEntry resets the entry so the display reads "0", but leaves it
// untouched as far as operator handling is concerned: a following operator
// press still replaces the pending operator instead of resolving against
// zero.
func (e *Engine) clearEntry() {
	e.entry = ""
	e.blank = true
	e.justEq = false
}

func (e *Engine) backspace() {
	if e.entry == "" {
		return
	}
	e.justEq = false
	e.entry = e.entry[:len(e.entry)-1]
	if e.entry == "" || e.entry == "-" {
		e.entry = "0"
	}
}

func (e *Engine) toggleSign() {
	e.justEq = false
	e.blank = false
	if e.entry == "" {
		e.entry = "0"
	}
	if strings.HasPrefix(e.entry, "-") {
		e.entry = e.entry[1:]
	} else {
		e.entry = "-" + e.entry
	}
}

func (e *Engine) percent() {
	e.justEq = false
	e.blank = false
	// With an operator pending and nothing typed, percent scales the
	// accumulated value instead.
	if e.entry == "" && e.op != OpNone {
		e.acc, _ = eval.Div(e.acc, decimal.NewFromInt(100))
		return
	}
	v, _ := eval.Div(e.entryValue(), decimal.NewFromInt(100))
	e.entry = eval.Format(v)
}
