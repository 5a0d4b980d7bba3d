package smf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Garik-/mididecode/pkg/midi"
	"go.uber.org/zap"
)

type nextChunkType int

const (
	eventChunk nextChunkType = iota + 1
	trackChunk
)

type timeFormat int

const (
	MetricalTF timeFormat = iota + 1
	TimeCodeTF
)

const (
	metaStatus   = 0xFF
	sysExStatus  = 0xF0
	escapeStatus = 0xF7

	metaEndOfTrack = 0x2F
)

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B}

	// ErrFmtNotSupported is a generic error reporting an unknown format.
	ErrFmtNotSupported = errors.New("format not supported")
	// ErrUnexpectedData is a generic error reporting that the parser encountered unexpected data.
	ErrUnexpectedData = errors.New("unexpected data content")
)

// Event is one track event that was handed to the classifier. Err holds
// the classification error, if any; Message is nil in that case.
type Event struct {
	TimeDelta uint32
	Ticks     uint64
	Beat      int
	// Offset is the file offset of the status byte, or of the first data
	// byte when the event uses running status. The delta-time precedes it.
	Offset    int64
	Raw       []byte
	Message   midi.Message
	Err       error
}

type Track struct {
	Events []*Event
}

type Option func(d *Decoder)

func WithLogger(l *zap.Logger) Option {
	return func(d *Decoder) {
		d.log = l.Named("smf")
	}
}

func WithClassifier(c *midi.Classifier) Option {
	return func(d *Decoder) {
		d.classifier = c
	}
}

// Decoder reads a Standard MIDI File and classifies every channel,
// system exclusive and escaped event. Meta events are skipped.
type Decoder struct {
	r          io.ReadSeeker
	log        *zap.Logger
	classifier *midi.Classifier

	offset        int64
	trackEnd      int64
	ticks         uint64
	runningStatus byte
	currentTrack  *Track

	Format              uint16
	NumTracks           uint16
	TicksPerQuarterNote uint16
	FramesPerSecond     uint8
	TicksPerFrame       uint8
	TimeFormat          timeFormat
	Tracks              []*Track
}

func (d *Decoder) Decode() error {
	if _, err := d.r.Seek(0, io.SeekStart); err != nil {
		return err
	}

	var code [4]byte
	d.offset = 0
	d.Tracks = nil

	if err := binary.Read(d.r, binary.BigEndian, &code); err != nil {
		return err
	}

	if code != headerChunkID {
		return fmt.Errorf("%w - %v", ErrFmtNotSupported, code)
	}

	d.offset += 4 // [4]byte code

	var headerSize uint32
	if err := binary.Read(d.r, binary.BigEndian, &headerSize); err != nil {
		return noEOF(err)
	}

	if headerSize != 6 {
		return fmt.Errorf("%w - expected header size to be 6, was %d", ErrFmtNotSupported, headerSize)
	}

	var header struct {
		Format    uint16
		NumTracks uint16
		Division  uint16
	}
	if err := binary.Read(d.r, binary.BigEndian, &header); err != nil {
		return noEOF(err)
	}

	d.offset += 4 + 2 + 2 + 2 // uint32 headerSize + uint16 Format + uint16 NumTracks + uint16 Division

	d.Format = header.Format
	d.NumTracks = header.NumTracks

	if (header.Division & 0x8000) == 0 {
		d.TicksPerQuarterNote = header.Division & 0x7FFF
		d.TimeFormat = MetricalTF
	} else {
		d.FramesPerSecond = uint8(-int8(header.Division >> 8))
		d.TicksPerFrame = uint8(header.Division)
		d.TimeFormat = TimeCodeTF
	}

	d.log.Debug("header",
		zap.Uint16("format", d.Format),
		zap.Uint16("tracks", d.NumTracks),
		zap.Uint16("division", header.Division))

	var err error
	nextChunk := trackChunk

	for err == nil {
		switch nextChunk {
		case eventChunk:
			nextChunk, err = d.parseEvent()
		case trackChunk:
			nextChunk, err = d.parseTrack()
		}
	}

	if err != io.EOF {
		return err
	}

	if len(d.Tracks) != int(d.NumTracks) {
		d.log.Warn("track count mismatch", zap.Uint16("header", d.NumTracks), zap.Int("read", len(d.Tracks)))
	}

	_, err = d.r.Seek(0, io.SeekStart)
	return err
}

func (d *Decoder) parseTrack() (nextChunkType, error) {
	id, size, err := d.IDnSize()
	if err != nil {
		return trackChunk, err
	}

	if id != trackChunkID {
		d.log.Debug("skip chunk", zap.ByteString("id", id[:]), zap.Uint32("size", size))
		return trackChunk, d.skip(int64(size))
	}

	d.currentTrack = new(Track)
	d.Tracks = append(d.Tracks, d.currentTrack)
	d.trackEnd = d.offset + int64(size)
	d.ticks = 0
	d.runningStatus = 0

	return eventChunk, nil
}

func (d *Decoder) parseEvent() (nextChunkType, error) {
	if d.offset >= d.trackEnd {
		return trackChunk, nil
	}

	timeDelta, err := d.varLen()
	if err != nil {
		return eventChunk, noEOF(err)
	}
	d.ticks += uint64(timeDelta)

	e := &Event{TimeDelta: timeDelta, Ticks: d.ticks, Offset: d.offset}
	if d.TimeFormat == MetricalTF {
		e.Beat = beatInBar(d.ticks, d.TicksPerQuarterNote)
	}

	// status byte give us the msg type and channel.
	statusByte, err := d.readByte()
	if err != nil {
		return eventChunk, noEOF(err)
	}

	switch statusByte {
	case metaStatus:
		d.runningStatus = 0
		return d.parseMetaMsg()

	case sysExStatus, escapeStatus:
		d.runningStatus = 0
		payload, err := d.varLenData()
		if err != nil {
			return eventChunk, err
		}
		if statusByte == sysExStatus {
			e.Raw = append([]byte{sysExStatus}, payload...)
		} else if len(payload) == 0 {
			return eventChunk, nil
		} else {
			e.Raw = payload
		}

	default:
		var data []byte

		if statusByte&0x80 == 0 {
			if d.runningStatus == 0 {
				return eventChunk, fmt.Errorf("%w - data byte %#02x without running status at offset %d",
					ErrUnexpectedData, statusByte, e.Offset)
			}
			data = append(data, statusByte)
			statusByte = d.runningStatus
		} else if isVoiceMsgType(statusByte >> 4) {
			d.runningStatus = statusByte
		} else {
			d.runningStatus = 0
		}

		for len(data) < dataLen(statusByte) {
			b, err := d.readByte()
			if err != nil {
				return eventChunk, noEOF(err)
			}
			data = append(data, b)
		}

		e.Raw = append([]byte{statusByte}, data...)
	}

	if d.offset > d.trackEnd {
		return eventChunk, fmt.Errorf("%w - event at offset %d overruns track end %d", ErrUnexpectedData, e.Offset, d.trackEnd)
	}

	e.Message, e.Err = d.classifier.Classify(e.Raw)
	if e.Err != nil {
		d.log.Debug("event not decoded", zap.Int64("offset", e.Offset), zap.Error(e.Err))
	}

	d.currentTrack.Events = append(d.currentTrack.Events, e)
	return eventChunk, nil
}

func (d *Decoder) parseMetaMsg() (nextChunkType, error) {
	metaType, err := d.readByte()
	if err != nil {
		return eventChunk, noEOF(err)
	}

	if err := d.varLenTxt(); err != nil {
		return eventChunk, err
	}
	if d.offset > d.trackEnd {
		return eventChunk, fmt.Errorf("%w - meta event %#02x overruns track end %d", ErrUnexpectedData, metaType, d.trackEnd)
	}

	if metaType == metaEndOfTrack {
		// anything left in the chunk after end of track is ignored
		return trackChunk, d.skip(d.trackEnd - d.offset)
	}

	return eventChunk, nil
}

func NewDecoder(r io.ReadSeeker, opts ...Option) *Decoder {
	d := &Decoder{r: r, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	if d.classifier == nil {
		d.classifier = midi.NewClassifier(midi.WithLogger(d.log))
	}
	return d
}
