// Package frame
// Author: momentics <momentics@gmail.com>
//
// Multisink: the broadcast Sink that fans a write out to many peers.

package frame

import (
	"go.uber.org/multierr"

	"github.com/momentics/wscodec/api"
)

// FanOutSink writes the same bytes to every sink it wraps — the
// write-side counterpart of a broadcast fan-out, so a single
// serialized frame can be pushed to many connections without
// re-encoding it per destination.
type FanOutSink struct {
	Sinks []api.Sink
}

// Write writes b to every wrapped sink, continuing past individual
// failures so one dead peer does not stop delivery to the rest, and
// folds every failure into a single error via go.uber.org/multierr.
func (f FanOutSink) Write(b []byte) error {
	var errs error
	for _, s := range f.Sinks {
		if err := s.Write(b); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// WriteChunked mirrors Write's fan-out and error-folding behavior for
// the chunked write path.
func (f FanOutSink) WriteChunked(b []byte, chunkSize int) error {
	var errs error
	for _, s := range f.Sinks {
		if err := s.WriteChunked(b, chunkSize); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
