package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/abates/foscam"
	"github.com/spf13/cobra"
)

// exitFunc is swapped out by tests.
var exitFunc = os.Exit

func execute(cmd *cobra.Command) {
	err := cmd.Execute()
	if err != nil {
		var unknown *foscam.UnknownCommandError
		var usage *usageError
		switch {
		case errors.As(err, &unknown):
			fmt.Fprintln(cmd.OutOrStdout(), err)
		case errors.As(err, &usage):
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
			exitFunc(2)
			return
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", err)
		}
		exitFunc(1)
		return
	}
	exitFunc(0)
}

func main() {
	execute(newRootCmd())
}
