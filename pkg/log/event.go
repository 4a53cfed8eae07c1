package log

import "time"

// Event represents a frontend trace event captured at the device or
// session layer. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the frontend session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates call flow relative to the device.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Device is the frontend path or name.
	Device string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Call        *CallEvent        `cbor:"10,keyasint,omitempty"` // Device layer
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"` // Session state
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of a control call.
type Direction uint8

const (
	// DirectionIn indicates data returned by the device.
	DirectionIn Direction = 0
	// DirectionOut indicates a request sent to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerDevice is the control-call layer.
	LayerDevice Layer = 0
	// LayerSession is the translation layer above the device.
	LayerSession Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerDevice:
		return "DEVICE"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCall indicates a control call request or reply.
	CategoryCall Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCall:
		return "CALL"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// PropertyValue is one (command, value) pair of a property call.
type PropertyValue struct {
	Cmd   uint32 `cbor:"1,keyasint"`
	Value uint32 `cbor:"2,keyasint"`
}

// CallEvent captures one control call.
type CallEvent struct {
	// Name is the control call (e.g. "FE_SET_PROPERTY").
	Name string `cbor:"1,keyasint"`

	// Properties carried by property-protocol calls.
	Properties []PropertyValue `cbor:"2,keyasint,omitempty"`

	// Value is the scalar argument or result (voltage, status, BER...).
	Value *uint32 `cbor:"3,keyasint,omitempty"`

	// Payload is the raw DiSEqC message or legacy parameter words.
	Payload []byte `cbor:"4,keyasint,omitempty"`

	// Duration of the call (replies only). Stored as nanoseconds.
	Duration *time.Duration `cbor:"5,keyasint,omitempty"`

	// Err is the failure reported by the device (replies only).
	Err string `cbor:"6,keyasint,omitempty"`
}

// StateChangeEvent captures session lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntitySession indicates a session open/close.
	StateEntitySession StateEntity = 0
	// StateEntityProtocol indicates protocol generation detection.
	StateEntityProtocol StateEntity = 1
	// StateEntityDeliverySystem indicates a delivery system switch.
	StateEntityDeliverySystem StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntitySession:
		return "SESSION"
	case StateEntityProtocol:
		return "PROTOCOL"
	case StateEntityDeliverySystem:
		return "DELIVERY_SYSTEM"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the numeric status (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
