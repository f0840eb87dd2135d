package cgi

import (
	"strconv"
	"strings"
)

type Endpoint string

const (
	DecoderControl Endpoint = "decoder_control.cgi"
	Reboot         Endpoint = "reboot.cgi"
)

// Command is a decoder_control.cgi command code.
type Command int

const (
	Up        Command = 0
	Stop      Command = 1
	Down      Command = 2
	Right     Command = 4
	Left      Command = 6
	UpRight   Command = 90
	UpLeft    Command = 91
	DownRight Command = 92
	DownLeft  Command = 93
	IROff     Command = 94
	IROn      Command = 95

	setPresetBase  Command = 30
	gotoPresetBase Command = 31
)

// SetPreset returns the command code that stores the current position as
// preset n.
func SetPreset(n int) Command { return setPresetBase + Command(n*2) }

// GotoPreset returns the command code that moves the camera to preset n.
func GotoPreset(n int) Command { return gotoPresetBase + Command(n*2) }

func (c Command) String() string { return strconv.Itoa(int(c)) }

type Param struct {
	Key   string
	Value string
}

// Request is a CGI path plus an ordered query. The camera firmware is picky
// about the exact query text, so params are rendered verbatim without
// escaping.
type Request struct {
	Path  Endpoint
	Query []Param

	// TrailingAmp appends a bare '&' after the last param.
	TrailingAmp bool
}

func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString(string(r.Path))
	sb.WriteByte('?')
	for i, p := range r.Query {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	if r.TrailingAmp {
		sb.WriteByte('&')
	}
	return sb.String()
}

// Control builds a decoder_control.cgi request for cmd followed by any extra
// params.
func Control(cmd Command, params ...Param) Request {
	return Request{
		Path:  DecoderControl,
		Query: append([]Param{{"command", cmd.String()}}, params...),
	}
}

func OneStep(n int) Param { return Param{"onestep", strconv.Itoa(n)} }

func Preset(n int) Param { return Param{"preset", strconv.Itoa(n)} }

func RebootRequest() Request { return Request{Path: Reboot} }
