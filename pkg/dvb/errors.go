package dvb

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind classifies a frontend failure.
type Kind uint8

const (
	// KindOpen means the device could not be opened or its info queried.
	KindOpen Kind = iota + 1
	// KindEnumeration means no delivery system could be derived or reported.
	KindEnumeration
	// KindUnsupportedTransition means the requested change is not possible
	// on this device or protocol generation.
	KindUnsupportedTransition
	// KindLookupMiss means a command is not part of the active property list.
	KindLookupMiss
	// KindDevice means a control call failed.
	KindDevice
	// KindFraming means a satellite command exceeded its length limit.
	KindFraming
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindEnumeration:
		return "enumeration"
	case KindUnsupportedTransition:
		return "unsupported transition"
	case KindLookupMiss:
		return "lookup miss"
	case KindDevice:
		return "device"
	case KindFraming:
		return "framing"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind, matched by errors.Is against *Error.
var (
	ErrOpen                  = errors.New("frontend open failed")
	ErrEnumeration           = errors.New("no delivery system available")
	ErrUnsupportedTransition = errors.New("unsupported delivery system transition")
	ErrLookupMiss            = errors.New("property not in active list")
	ErrDevice                = errors.New("frontend control call failed")
	ErrFraming               = errors.New("satellite command too long")
)

// These are reported inside an *Error of KindUnsupportedTransition.
var (
	// ErrNoCompatibleSystem means no supported system can emulate the
	// requested one.
	ErrNoCompatibleSystem = errors.New("no compatible delivery system")

	// ErrUnknownFamily means the active system has no legacy mapping.
	ErrUnknownFamily = errors.New("delivery system has no legacy mapping")
)

// Error is a classified frontend failure.
type Error struct {
	Kind Kind
	// Op names the failed operation (e.g. "FE_SET_PROPERTY").
	Op  string
	Err error
}

// NewError returns an *Error of kind k wrapping err.
func NewError(k Kind, op string, err error) *Error {
	return &Error{Kind: k, Op: op, Err: err}
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return e.Op + ": " + e.sentinel().Error()
	default:
		return e.sentinel().Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindOpen:
		return ErrOpen
	case KindEnumeration:
		return ErrEnumeration
	case KindUnsupportedTransition:
		return ErrUnsupportedTransition
	case KindLookupMiss:
		return ErrLookupMiss
	case KindDevice:
		return ErrDevice
	case KindFraming:
		return ErrFraming
	default:
		return nil
	}
}

// KindOf returns the kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Code converts err to the numeric status used by C-style callers: 0 for
// nil, -1 for ErrNoCompatibleSystem and the wrapped errno when there is
// one. Otherwise the kind decides: EINVAL for caller mistakes, ENODEV for
// open failures, EIO for the rest.
func Code(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrNoCompatibleSystem) {
		return -1
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	switch KindOf(err) {
	case KindUnsupportedTransition, KindLookupMiss, KindFraming:
		return int(syscall.EINVAL)
	case KindOpen:
		return int(syscall.ENODEV)
	default:
		return int(syscall.EIO)
	}
}
