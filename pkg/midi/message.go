package midi

import "fmt"

type Category uint8

const (
	VoiceCategory Category = iota + 1
	ChannelModeCategory
	SystemCommonCategory
	RealTimeCategory
)

func (c Category) String() string {
	switch c {
	case VoiceCategory:
		return "voice"
	case ChannelModeCategory:
		return "channel mode"
	case SystemCommonCategory:
		return "system common"
	case RealTimeCategory:
		return "system real-time"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Message is one decoded MIDI message. The concrete type is one of
// Voice, ChannelMode, SystemCommon or RealTime.
type Message interface {
	Category() Category
	String() string

	message()
}

type VoiceKind uint8

// Status nibbles of the channel voice messages.
const (
	NoteOff       VoiceKind = 0x8
	NoteOn        VoiceKind = 0x9
	Aftertouch    VoiceKind = 0xA
	ControlChange VoiceKind = 0xB
	ProgramChange VoiceKind = 0xC
	PitchBend     VoiceKind = 0xE
)

func (k VoiceKind) String() string {
	switch k {
	case NoteOff:
		return "NoteOff"
	case NoteOn:
		return "NoteOn"
	case Aftertouch:
		return "Aftertouch"
	case ControlChange:
		return "ControlChange"
	case ProgramChange:
		return "ProgramChange"
	case PitchBend:
		return "PitchBend"
	}
	return fmt.Sprintf("VoiceKind(%#x)", uint8(k))
}

// Voice carries the first data byte only, whatever the payload width of Kind.
type Voice struct {
	Kind    VoiceKind
	Channel uint8
	Data    uint8
}

func (Voice) Category() Category { return VoiceCategory }

func (m Voice) String() string {
	return fmt.Sprintf("%s ch:%d data:%d", m.Kind, m.Channel, m.Data)
}

func (Voice) message() {}

type ChannelModeType uint8

const (
	AllSoundOff ChannelModeType = iota + 1
	ResetAllControllers
	LocalControl
	AllNotesOff
)

func (t ChannelModeType) String() string {
	switch t {
	case AllSoundOff:
		return "AllSoundOff"
	case ResetAllControllers:
		return "ResetAllControllers"
	case LocalControl:
		return "LocalControl"
	case AllNotesOff:
		return "AllNotesOff"
	}
	return fmt.Sprintf("ChannelModeType(%d)", uint8(t))
}

// ChannelModeKind is the mode change an AllNotesOff message may request.
type ChannelModeKind uint8

const (
	OmniMode ChannelModeKind = iota + 1
	MonoMode
	PolyMode
)

func (k ChannelModeKind) String() string {
	switch k {
	case OmniMode:
		return "Omni"
	case MonoMode:
		return "Mono"
	case PolyMode:
		return "Poly"
	}
	return fmt.Sprintf("ChannelModeKind(%d)", uint8(k))
}

// ModeChange is set on AllNotesOff messages sent by controllers 124-127.
// Omni is meaningful for OmniMode, Channels for MonoMode.
type ModeChange struct {
	Kind     ChannelModeKind
	Omni     bool
	Channels uint8
}

func (c ModeChange) String() string {
	switch c.Kind {
	case OmniMode:
		if c.Omni {
			return "Omni(on)"
		}
		return "Omni(off)"
	case MonoMode:
		return fmt.Sprintf("Mono(%d)", c.Channels)
	}
	return c.Kind.String()
}

// ChannelMode is a Control Change on controllers 120-127. LocalOn is set
// only for LocalControl, Mode only for AllNotesOff. A zero Mode.Kind means
// the message requests no mode change.
type ChannelMode struct {
	Kind    ChannelModeType
	Channel uint8
	LocalOn bool
	Mode    ModeChange
}

func (ChannelMode) Category() Category { return ChannelModeCategory }

func (m ChannelMode) String() string {
	switch m.Kind {
	case LocalControl:
		return fmt.Sprintf("%s ch:%d on:%t", m.Kind, m.Channel, m.LocalOn)
	case AllNotesOff:
		if m.Mode.Kind != 0 {
			return fmt.Sprintf("%s ch:%d mode:%s", m.Kind, m.Channel, m.Mode)
		}
	}
	return fmt.Sprintf("%s ch:%d", m.Kind, m.Channel)
}

func (ChannelMode) message() {}

type SystemCommonKind uint8

// Low nibbles of the system common status bytes.
const (
	SystemExclusive      SystemCommonKind = 0x0
	TimeCodeQuarterFrame SystemCommonKind = 0x1
	SongPositionPointer  SystemCommonKind = 0x2
	SongSelect           SystemCommonKind = 0x3
	TuneRequest          SystemCommonKind = 0x6
	EndOfExclusive       SystemCommonKind = 0x7
)

func (k SystemCommonKind) String() string {
	switch k {
	case SystemExclusive:
		return "SystemExclusive"
	case TimeCodeQuarterFrame:
		return "QuarterFrame"
	case SongPositionPointer:
		return "SongPosition"
	case SongSelect:
		return "SongSelect"
	case TuneRequest:
		return "TuneRequest"
	case EndOfExclusive:
		return "EndOfExclusive"
	}
	return fmt.Sprintf("SystemCommonKind(%#x)", uint8(k))
}

// QuarterFrameKind is the MTC field carried by bits 4-6 of a quarter frame data byte.
type QuarterFrameKind uint8

const (
	FrameLSBs QuarterFrameKind = iota
	FrameMSB
	SecondLSBs
	SecondMSBs
	MinuteLSBs
	MinuteMSBs
	HourLSBs
	HourMSBAndRate
)

// indexed by the 3-bit field, so every value has an entry
var quarterFrameKinds = [8]QuarterFrameKind{
	FrameLSBs,
	FrameMSB,
	SecondLSBs,
	SecondMSBs,
	MinuteLSBs,
	MinuteMSBs,
	HourLSBs,
	HourMSBAndRate,
}

var quarterFrameNames = [8]string{
	"FrameLSBs",
	"FrameMSB",
	"SecondLSBs",
	"SecondMSBs",
	"MinuteLSBs",
	"MinuteMSBs",
	"HourLSBs",
	"HourMSBAndRate",
}

func (k QuarterFrameKind) String() string {
	if int(k) < len(quarterFrameNames) {
		return quarterFrameNames[k]
	}
	return fmt.Sprintf("QuarterFrameKind(%d)", uint8(k))
}

type QuarterFrame struct {
	Kind  QuarterFrameKind
	Value uint8 // 0-15
}

// SystemCommon holds one system common message; only the field matching
// Kind is set. SysEx excludes the F0 and F7 framing bytes.
type SystemCommon struct {
	Kind         SystemCommonKind
	SysEx        []byte
	Frame        QuarterFrame
	SongPosition uint16
	Song         uint8
}

func (SystemCommon) Category() Category { return SystemCommonCategory }

func (m SystemCommon) String() string {
	switch m.Kind {
	case SystemExclusive:
		return fmt.Sprintf("%s len:%d % x", m.Kind, len(m.SysEx), m.SysEx)
	case TimeCodeQuarterFrame:
		return fmt.Sprintf("%s %s:%d", m.Kind, m.Frame.Kind, m.Frame.Value)
	case SongPositionPointer:
		return fmt.Sprintf("%s beats:%d", m.Kind, m.SongPosition)
	case SongSelect:
		return fmt.Sprintf("%s song:%d", m.Kind, m.Song)
	}
	return m.Kind.String()
}

func (SystemCommon) message() {}

type RealTimeKind uint8

const (
	TimingClock RealTimeKind = iota + 1
	Start
	Continue
	Stop
	ActiveSensing
	Reset
)

func (k RealTimeKind) String() string {
	switch k {
	case TimingClock:
		return "TimingClock"
	case Start:
		return "Start"
	case Continue:
		return "Continue"
	case Stop:
		return "Stop"
	case ActiveSensing:
		return "ActiveSensing"
	case Reset:
		return "Reset"
	}
	return fmt.Sprintf("RealTimeKind(%d)", uint8(k))
}

type RealTime struct {
	Kind RealTimeKind
}

func (RealTime) Category() Category { return RealTimeCategory }

func (m RealTime) String() string { return m.Kind.String() }

func (RealTime) message() {}
