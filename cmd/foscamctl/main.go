package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/abates/cli"
	"github.com/abates/foscam"
)

var app *cli.Command
var host string
var username string
var password string
var output io.Writer = os.Stdout

func init() {
	app = cli.New(
		filepath.Base(os.Args[0]),
		cli.UsageOption("<command> <remote host> <username> <password>"),
	)

	app.SetOutput(os.Stderr)

	for _, name := range foscam.Commands() {
		action, _ := foscam.Lookup(name)
		cmd := app.SubCommand(name,
			cli.UsageOption("<remote host> <username> <password>"),
			cli.DescOption(action.Desc),
			cli.CallbackOption(sendCb(name)),
		)
		cmd.Arguments.String(&host, "remote host")
		cmd.Arguments.String(&username, "username")
		cmd.Arguments.String(&password, "password")
	}
}

// sendCb returns the callback for one subcommand. The positional form has
// no preset or iteration arguments so both stay at 1.
func sendCb(name string) func(string) error {
	return func(string) error {
		camera := foscam.New(
			foscam.Config{Host: host, Username: username, Password: password},
			foscam.OutputOption(output),
		)
		return foscam.Run(camera, foscam.Spec{Name: name, Preset: 1, Iterations: 1})
	}
}

func main() {
	app.Parse(os.Args[1:])
	err := app.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
