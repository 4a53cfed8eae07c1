// Package dvb defines the Linux DVB frontend control ABI used by dvbfe-go.
//
// The package mirrors the kernel's frontend API in two generations:
//
//   - The property protocol (DVB API v5): lists of (command, value) pairs
//     exchanged through FE_GET_PROPERTY / FE_SET_PROPERTY.
//   - The legacy protocol (DVB API v3): one fixed struct per modulation
//     family exchanged through FE_GET_FRONTEND / FE_SET_FRONTEND.
//
// # Device
//
// Device is the set of control calls the upper layers consume. OpenFrontend
// returns the Linux implementation backed by ioctls on
// /dev/dvb/adapterN/frontendM. Tests use mocks.MockDevice or
// dvbsim.Device instead.
//
// # Command Ranges
//
// Property commands live in three ranges:
//
//	[0, UserCommandStart)               kernel property commands
//	[UserCommandStart, MaxUserCommand]  user-extension commands (never sent to a device)
//	[StatCommandStart, ...]             statistics slots
//
// # Errors
//
// Failures are reported as *Error values carrying a closed Kind. Use
// errors.Is with the Err* sentinels to classify them and Code to convert
// them to a numeric status at C-style boundaries.
//
// # Tracing
//
// Trace wraps a Device so that each control call is recorded as a pair of
// request/reply events on a log.Logger.
package dvb
