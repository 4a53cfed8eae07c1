//go:build !linux

package dvb

import "errors"

// OpenFrontend is only implemented on Linux.
func OpenFrontend(adapter, frontend int) (Device, error) {
	return nil, NewError(KindOpen, FrontendPath(adapter, frontend), errors.ErrUnsupported)
}
