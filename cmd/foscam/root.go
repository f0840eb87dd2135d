package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abates/foscam"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	Host       string        `mapstructure:"monitor-address"`
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	Command    string        `mapstructure:"command"`
	Preset     int           `mapstructure:"preset"`
	Iterations int           `mapstructure:"iterations"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringP("monitor-address", "a", "", "IP address or hostname of the Foscam camera.")
	flags.StringP("username", "u", "", "Foscam camera username.")
	flags.StringP("password", "p", "", "Foscam camera password.")
	flags.StringP("command", "c", "", "Command to send to the camera.")
	flags.IntP("preset", "s", 1, "Preset value for set_preset command")
	flags.IntP("iterations", "n", 1, "Number of times to execute the command (default: 1)")
	flags.Duration("timeout", 0, "Per-request timeout (e.g., 5s). 0 waits forever")
}

// loadOptions resolves the parsed flags. Only flags are consulted, there
// is no environment or file layer.
func loadOptions(flags *pflag.FlagSet) (opts options, err error) {
	v := viper.New()
	if err = v.BindPFlags(flags); err == nil {
		err = v.Unmarshal(&opts)
	}
	return opts, err
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "foscam",
		Short:         "Control a Foscam camera via CGI commands",
		Long:          "Sends pan/tilt, preset, infrared and reboot commands to a Foscam camera over its HTTP CGI interface.",
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE:       checkRequired,
		RunE:          run,
	}

	addFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})
	return cmd
}

// usageError marks a command line the parser rejected. It exits with 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

var requiredFlags = []string{"monitor-address", "username", "password", "command"}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err}
	}
	return nil
}

func checkRequired(cmd *cobra.Command, args []string) error {
	var missing []string
	for _, name := range requiredFlags {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, strconv.Quote(name))
		}
	}
	if len(missing) > 0 {
		return &usageError{fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))}
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd.Flags())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if foscam.IsHelp(opts.Command) {
		fmt.Fprint(out, foscam.HelpText, "\n")
		return nil
	}

	if _, err := foscam.Lookup(opts.Command); err != nil {
		return err
	}

	if opts.Iterations < 1 {
		return foscam.ErrInvalidIterations
	}

	camera := foscam.New(
		foscam.Config{Host: opts.Host, Username: opts.Username, Password: opts.Password},
		foscam.OutputOption(out),
		foscam.TimeoutOption(opts.Timeout),
	)

	fmt.Fprintln(out, "DEBUG: send command")
	return foscam.Run(camera, foscam.Spec{
		Name:       opts.Command,
		Preset:     opts.Preset,
		Iterations: opts.Iterations,
	})
}
