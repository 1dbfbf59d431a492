package transport

import (
	"errors"
	"io"

	"github.com/fkcurrie/ledmatrix-golang/pkg/ledmatrix"
)

// Tee sends every frame to all of its transports, e.g. a strip and a preview.
// Every transport gets the frame even if an earlier one fails.
type Tee []ledmatrix.Transport

// Send forwards buf to each transport in order
func (t Tee) Send(buf []byte, line ledmatrix.HardwareLine) error {
	var errs []error
	for _, tr := range t {
		if err := tr.Send(buf, line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every transport that implements io.Closer
func (t Tee) Close() error {
	var errs []error
	for _, tr := range t {
		if err := closeTransport(tr); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func closeTransport(tr ledmatrix.Transport) error {
	if c, ok := tr.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
