// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Built-in exception hierarchy. Each type embeds its base so a pointer
// to the base sub-object can be produced without reflection; the
// declared graph is registered below with [DefineException].
//
//	Exception
//	├── RuntimeError
//	│   ├── RangeError
//	│   ├── OverflowError
//	│   └── UnderflowError
//	├── LogicError
//	│   ├── InvalidArgument
//	│   ├── DomainFault
//	│   ├── LengthError
//	│   └── OutOfRange
//	└── BadAlloc

// Exception is the root of the built-in exception hierarchy.
type Exception struct {
	Message string
}

// NewException returns an Exception carrying the given message.
func NewException(message string) Exception {
	return Exception{Message: message}
}

// What returns the exception message.
func (e *Exception) What() string { return e.Message }

// RuntimeError reports a condition detectable only at run time.
type RuntimeError struct{ Exception }

// NewRuntimeError returns a RuntimeError carrying the given message.
func NewRuntimeError(message string) RuntimeError {
	return RuntimeError{Exception{Message: message}}
}

// RangeError reports a result outside the range of run-time computation.
type RangeError struct{ RuntimeError }

// NewRangeError returns a RangeError carrying the given message.
func NewRangeError(message string) RangeError {
	return RangeError{RuntimeError{Exception{Message: message}}}
}

// OverflowError reports an arithmetic overflow.
type OverflowError struct{ RuntimeError }

// NewOverflowError returns an OverflowError carrying the given message.
func NewOverflowError(message string) OverflowError {
	return OverflowError{RuntimeError{Exception{Message: message}}}
}

// UnderflowError reports an arithmetic underflow.
type UnderflowError struct{ RuntimeError }

// NewUnderflowError returns an UnderflowError carrying the given message.
func NewUnderflowError(message string) UnderflowError {
	return UnderflowError{RuntimeError{Exception{Message: message}}}
}

// LogicError reports a violated precondition or class invariant.
type LogicError struct{ Exception }

// NewLogicError returns a LogicError carrying the given message.
func NewLogicError(message string) LogicError {
	return LogicError{Exception{Message: message}}
}

// InvalidArgument reports an argument rejected by the callee.
type InvalidArgument struct{ LogicError }

// NewInvalidArgument returns an InvalidArgument carrying the given message.
func NewInvalidArgument(message string) InvalidArgument {
	return InvalidArgument{LogicError{Exception{Message: message}}}
}

// DomainFault reports an argument outside the domain of an operation.
type DomainFault struct{ LogicError }

// NewDomainFault returns a DomainFault carrying the given message.
func NewDomainFault(message string) DomainFault {
	return DomainFault{LogicError{Exception{Message: message}}}
}

// LengthError reports an attempt to exceed a maximum allowed size.
type LengthError struct{ LogicError }

// NewLengthError returns a LengthError carrying the given message.
func NewLengthError(message string) LengthError {
	return LengthError{LogicError{Exception{Message: message}}}
}

// OutOfRange reports an access outside the valid range.
type OutOfRange struct{ LogicError }

// NewOutOfRange returns an OutOfRange carrying the given message.
func NewOutOfRange(message string) OutOfRange {
	return OutOfRange{LogicError{Exception{Message: message}}}
}

// BadAlloc reports a failed storage allocation.
type BadAlloc struct{ Exception }

// NewBadAlloc returns a BadAlloc carrying the given message.
func NewBadAlloc(message string) BadAlloc {
	return BadAlloc{Exception{Message: message}}
}

var (
	// ExceptionType is the descriptor of the hierarchy root.
	ExceptionType = DefineException[Exception]("exception")

	// RuntimeErrorType is the descriptor of [RuntimeError].
	RuntimeErrorType = DefineException[RuntimeError]("runtime_error",
		BaseOf(func(e *RuntimeError) *Exception { return &e.Exception }))

	// RangeErrorType is the descriptor of [RangeError].
	RangeErrorType = DefineException[RangeError]("range_error",
		BaseOf(func(e *RangeError) *RuntimeError { return &e.RuntimeError }))

	// OverflowErrorType is the descriptor of [OverflowError].
	OverflowErrorType = DefineException[OverflowError]("overflow_error",
		BaseOf(func(e *OverflowError) *RuntimeError { return &e.RuntimeError }))

	// UnderflowErrorType is the descriptor of [UnderflowError].
	UnderflowErrorType = DefineException[UnderflowError]("underflow_error",
		BaseOf(func(e *UnderflowError) *RuntimeError { return &e.RuntimeError }))

	// LogicErrorType is the descriptor of [LogicError].
	LogicErrorType = DefineException[LogicError]("logic_error",
		BaseOf(func(e *LogicError) *Exception { return &e.Exception }))

	// InvalidArgumentType is the descriptor of [InvalidArgument].
	InvalidArgumentType = DefineException[InvalidArgument]("invalid_argument",
		BaseOf(func(e *InvalidArgument) *LogicError { return &e.LogicError }))

	// DomainFaultType is the descriptor of [DomainFault].
	DomainFaultType = DefineException[DomainFault]("domain_fault",
		BaseOf(func(e *DomainFault) *LogicError { return &e.LogicError }))

	// LengthErrorType is the descriptor of [LengthError].
	LengthErrorType = DefineException[LengthError]("length_error",
		BaseOf(func(e *LengthError) *LogicError { return &e.LogicError }))

	// OutOfRangeType is the descriptor of [OutOfRange].
	OutOfRangeType = DefineException[OutOfRange]("out_of_range",
		BaseOf(func(e *OutOfRange) *LogicError { return &e.LogicError }))

	// BadAllocType is the descriptor of [BadAlloc].
	BadAllocType = DefineException[BadAlloc]("bad_alloc",
		BaseOf(func(e *BadAlloc) *Exception { return &e.Exception }))
)
