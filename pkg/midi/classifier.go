package midi

import (
	"errors"

	"go.uber.org/zap"
)

type decodeFunc func(b []byte) (Message, error)

// tried in this order; the first family that is not ErrNoMatch decides
var decoders = [...]decodeFunc{
	DecodeVoice,
	DecodeChannelMode,
	DecodeSystemCommon,
	DecodeRealTime,
}

type Option func(c *Classifier)

func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) {
		c.log = l.Named("classifier")
	}
}

// Classifier decodes single MIDI messages. It keeps no state between
// calls and is safe for concurrent use.
type Classifier struct {
	log *zap.Logger
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify decodes the message at the start of b. b must begin at a status
// byte and hold the data bytes of that message. The error wraps either
// ErrUnrecognized or ErrMalformed.
func (c *Classifier) Classify(b []byte) (Message, error) {
	if len(b) == 0 {
		err := &DecodeError{Err: ErrUnrecognized, Reason: "empty window"}
		c.log.Debug("empty window")
		return nil, err
	}

	for _, decode := range decoders {
		m, err := decode(b)
		if err == nil {
			return m, nil
		}
		if errors.Is(err, ErrNoMatch) {
			continue
		}

		c.log.Debug("malformed", zap.Binary("window", b), zap.Error(err))
		return nil, err
	}

	err := unrecognized(b[0])
	c.log.Debug("unrecognized", zap.Uint8("status", b[0]))
	return nil, err
}

var defaultClassifier = NewClassifier()

func Classify(b []byte) (Message, error) {
	return defaultClassifier.Classify(b)
}
