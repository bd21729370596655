package barcode

import (
	"context"
	"errors"
	"image"
	"io"
	"sync"
)

// FrameSource yields frames from a live capture (camera relay, uploaded
// frame stream). NextFrame returns io.EOF when the stream is exhausted.
type FrameSource interface {
	NextFrame(ctx context.Context) (image.Image, error)
	Close() error
}

// Session scans frames from a source until one decodes or the session is
// stopped. The source is released on every exit path, and a decode
// callback firing after Stop is a no-op.
type Session struct {
	chain  *Chain
	source FrameSource

	mu      sync.Mutex
	stopped bool
}

func NewSession(chain *Chain, source FrameSource) *Session {
	return &Session{chain: chain, source: source}
}

// Run consumes frames until a decode succeeds, the source ends, ctx is
// done, or Stop is called. Frames that fail to decode are skipped, not
// errors.
func (s *Session) Run(ctx context.Context, onDecoded func(text string)) error {
	defer s.Stop()

	for {
		if s.isStopped() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		frame, err := s.source.NextFrame(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		text, err := s.chain.Decode(frame)
		if err != nil {
			continue
		}

		s.mu.Lock()
		stopped := s.stopped
		s.mu.Unlock()
		if !stopped && onDecoded != nil {
			onDecoded(text)
		}
		return nil
	}
}

// Stop revokes the session and releases the source. Idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	_ = s.source.Close()
}

func (s *Session) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
