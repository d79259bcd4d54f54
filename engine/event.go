package engine

// Op identifies a binary calculator operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	}
	return ""
}

// Event is a normalized calculator input. The vocabulary is fixed, so the
// engine switches exhaustively over the concrete types.
type Event interface {
	isEvent()
}

// Digit appends the digit N (0..9) to the entry.
type Digit struct {
	N int
}

// DecimalPoint appends a decimal point to the entry if none is present.
type DecimalPoint struct{}

// Operator stores a pending operator, resolving any prior pending
// computation first.
type Operator struct {
	Op Op
}

// Equals resolves the pending computation.
type Equals struct{}

// Clear resets the engine to its initial state. It is the only event
// recognized in the error state.
type Clear struct{}

// ClearEntry resets the entry without touching the accumulator or the
// pending operator.
type ClearEntry struct{}

// Backspace drops the last entry character.
type Backspace struct{}

// ToggleSign flips the sign of the entry.
type ToggleSign struct{}

// Percent divides the entry by 100 in place.
type Percent struct{}

func (Digit) isEvent()        {}
func (DecimalPoint) isEvent() {}
func (Operator) isEvent()     {}
func (Equals) isEvent()       {}
func (Clear) isEvent()        {}
func (ClearEntry) isEvent()   {}
func (Backspace) isEvent()    {}
func (ToggleSign) isEvent()   {}
func (Percent) isEvent()      {}
