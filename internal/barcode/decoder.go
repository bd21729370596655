package barcode

import (
	"image"
	"strings"
)

type Status int

const (
	StatusDecoded Status = iota
	StatusNotAttempted
	StatusFailed
)

// Outcome is the tagged result of one decode attempt. NotAttempted means
// the strategy could not run at all (missing capability, unreadable
// input); Failed means it ran and found no barcode. Neither is an error
// to the caller of a chain — only the chain as a whole can fail.
type Outcome struct {
	Status Status
	Text   string
	Reason string
}

func Decoded(text string) Outcome {
	return Outcome{Status: StatusDecoded, Text: text}
}

func NotAttempted(reason string) Outcome {
	return Outcome{Status: StatusNotAttempted, Reason: reason}
}

func Failed(reason string) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason}
}

type Decoder interface {
	Name() string
	Decode(img image.Image) Outcome
}

// DecodeFailure is returned when every strategy in a chain came up empty.
// Callers treat it as advisory: the user enters the details manually.
type DecodeFailure struct {
	Reasons []string
}

func (e *DecodeFailure) Error() string {
	return "no decoder produced a result: " + strings.Join(e.Reasons, "; ")
}

// Chain tries decoders in order; the first decoded text wins and later
// strategies are never invoked.
type Chain struct {
	decoders []Decoder
}

func NewChain(decoders ...Decoder) *Chain {
	return &Chain{decoders: decoders}
}

func (c *Chain) Decode(img image.Image) (string, error) {
	fail := &DecodeFailure{}
	for _, d := range c.decoders {
		out := d.Decode(img)
		if out.Status == StatusDecoded && out.Text != "" {
			return out.Text, nil
		}
		fail.Reasons = append(fail.Reasons, d.Name()+": "+out.Reason)
	}
	return "", fail
}
