package barcode

import (
	"context"
	"image"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	frames    []image.Image
	served    int
	closes    int
	onRequest func()
}

func (s *fakeSource) NextFrame(ctx context.Context) (image.Image, error) {
	if s.onRequest != nil {
		s.onRequest()
	}
	if s.served >= len(s.frames) {
		return nil, io.EOF
	}
	frame := s.frames[s.served]
	s.served++
	return frame, nil
}

func (s *fakeSource) Close() error {
	s.closes++
	return nil
}

func TestSession_DecodesAndStops(t *testing.T) {
	// first frame is unreadable, second decodes
	decoder := &fakeDecoder{name: "fake", outFunc: func(call int) Outcome {
		if call == 1 {
			return Failed("blurry")
		}
		return Decoded("9788804668237")
	}}
	source := &fakeSource{frames: []image.Image{testImage(), testImage()}}
	session := NewSession(NewChain(decoder), source)

	var got string
	err := session.Run(context.Background(), func(text string) { got = text })

	require.NoError(t, err)
	assert.Equal(t, "9788804668237", got)
	assert.Equal(t, 1, source.closes, "source released after a decode")
}

func TestSession_SourceExhausted(t *testing.T) {
	decoder := &fakeDecoder{name: "fake", out: Failed("nothing")}
	source := &fakeSource{frames: []image.Image{testImage()}}
	session := NewSession(NewChain(decoder), source)

	called := false
	err := session.Run(context.Background(), func(string) { called = true })

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, 1, source.closes)
}

func TestSession_StopBeforeRun(t *testing.T) {
	decoder := &fakeDecoder{name: "fake", out: Decoded("12345678")}
	source := &fakeSource{frames: []image.Image{testImage()}}
	session := NewSession(NewChain(decoder), source)

	session.Stop()

	called := false
	err := session.Run(context.Background(), func(string) { called = true })

	require.NoError(t, err)
	assert.False(t, called, "stopped session must not deliver decodes")
	assert.Equal(t, 0, source.served, "stopped session must not pull frames")
}

// Stop lands while a frame is in flight; the decode callback for that
// frame must be a no-op.
func TestSession_StopDuringCaptureSuppressesCallback(t *testing.T) {
	decoder := &fakeDecoder{name: "fake", out: Decoded("12345678")}
	source := &fakeSource{frames: []image.Image{testImage()}}
	var session *Session
	source.onRequest = func() { session.Stop() }
	session = NewSession(NewChain(decoder), source)

	called := false
	err := session.Run(context.Background(), func(string) { called = true })

	require.NoError(t, err)
	assert.False(t, called)
}

func TestSession_StopIdempotent(t *testing.T) {
	source := &fakeSource{}
	session := NewSession(NewDefaultChain(), source)

	session.Stop()
	session.Stop()
	session.Stop()

	assert.Equal(t, 1, source.closes)
}

func TestSession_ContextCancelled(t *testing.T) {
	decoder := &fakeDecoder{name: "fake", out: Failed("nothing")}
	source := &fakeSource{frames: []image.Image{testImage()}}
	session := NewSession(NewChain(decoder), source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := session.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, source.closes, "source released on the error path too")
}
