package foscam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abates/foscam/cgi"
)

var ErrInvalidIterations = errors.New("iterations must be at least 1")

// Spec is one invocation: which command to run, the preset it targets and
// how many times to send it.
type Spec struct {
	Name       string
	Preset     int
	Iterations int
}

type Action struct {
	Desc    string
	Request func(preset int) cgi.Request

	// Repeat is false for commands that are sent once no matter how many
	// iterations were asked for.
	Repeat bool
}

func control(cmd cgi.Command, params ...cgi.Param) func(int) cgi.Request {
	return func(int) cgi.Request { return cgi.Control(cmd, params...) }
}

func infrared(cmd cgi.Command) func(int) cgi.Request {
	return func(int) cgi.Request {
		req := cgi.Control(cmd)
		req.TrailingAmp = true
		return req
	}
}

func reboot(int) cgi.Request { return cgi.RebootRequest() }

var commandNames = []string{
	"reset",
	"move_up",
	"move_down",
	"move_left",
	"move_right",
	"move_up_right",
	"move_down_right",
	"move_up_left",
	"move_down_left",
	"stop",
	"set_preset",
	"goto_preset",
	"iron",
	"iroff",
	"reboot",
}

var commands = map[string]Action{
	"reset":           {"Reset Camera", reboot, false},
	"move_up":         {"Move Up", control(cgi.Up, cgi.OneStep(1)), true},
	"move_down":       {"Move Down", control(cgi.Down, cgi.OneStep(3)), true},
	"move_left":       {"Move Left", control(cgi.Left, cgi.OneStep(7)), true},
	"move_right":      {"Move Right", control(cgi.Right, cgi.OneStep(5)), true},
	"move_up_right":   {"Diagonally Up Right", control(cgi.UpRight, cgi.OneStep(1)), true},
	"move_down_right": {"Diagonally Down Right", control(cgi.DownRight, cgi.OneStep(1)), true},
	"move_up_left":    {"Diagonally Up Left", control(cgi.UpLeft), true},
	"move_down_left":  {"Diagonally Down Left", control(cgi.DownLeft), true},
	"stop":            {"Stop Movement", control(cgi.Stop), true},
	"set_preset": {"Set Preset", func(n int) cgi.Request {
		return cgi.Control(cgi.SetPreset(n), cgi.Preset(n))
	}, true},
	"goto_preset": {"Go to Preset", func(n int) cgi.Request {
		return cgi.Control(cgi.GotoPreset(n), cgi.Preset(n))
	}, true},
	"iron":   {"Turn IR On (Wake)", infrared(cgi.IROn), false},
	"iroff":  {"Turn IR Off (Sleep)", infrared(cgi.IROff), false},
	"reboot": {"Reboot Camera", reboot, false},
}

// Commands lists every valid command name in help order.
func Commands() []string {
	return append([]string(nil), commandNames...)
}

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Error: Invalid command '%s'. Valid commands are: %s", e.Name, strings.Join(commandNames, ", "))
}

// IsHelp reports whether name asks for the help text. Unlike command names
// it ignores case.
func IsHelp(name string) bool {
	return strings.EqualFold(name, "help")
}

func Lookup(name string) (Action, error) {
	action, found := commands[name]
	if !found {
		return Action{}, &UnknownCommandError{name}
	}
	return action, nil
}

// Run sends the command named by cmd to cam. Requests the camera rejects
// are reported by cam and do not stop the loop; a transport error does.
func Run(cam Camera, cmd Spec) error {
	if cmd.Iterations < 1 {
		return ErrInvalidIterations
	}

	action, err := Lookup(cmd.Name)
	if err != nil {
		return err
	}

	iterations := cmd.Iterations
	if !action.Repeat {
		iterations = 1
	}

	req := action.Request(cmd.Preset)
	for i := 0; i < iterations && err == nil; i++ {
		_, err = cam.Send(req)
	}
	return err
}
