package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes.
const (
	exitOK       = 0
	exitMismatch = 1
	exitError    = 2
)

// codedError carries a process exit code out of a command. A nil err means
// the command has already reported the outcome.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *codedError) Unwrap() error { return e.err }

// app holds the process I/O so commands can be driven from tests.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger

	// readSecret prompts on a terminal without echo. Nil when stdin is not
	// a terminal.
	readSecret func(prompt string) ([]byte, error)
}

func newTerminalApp() *app {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		a.readSecret = func(prompt string) ([]byte, error) {
			fmt.Fprint(a.errOut, prompt)
			defer fmt.Fprintln(a.errOut)
			return term.ReadPassword(fd)
		}
	}
	return a
}

func newRootCmd(a *app) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "bcrypt",
		Short:         "Hash, verify and inspect bcrypt password hashes",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.AddCommand(newHashCmd(a), newVerifyCmd(a), newInfoCmd(a))
	return root
}

// run executes the command line and returns the process exit code.
func run(args []string, a *app) int {
	if a.log == nil {
		a.log = logrus.New()
		a.log.SetOutput(a.errOut)
		a.log.SetLevel(logrus.InfoLevel)
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var ce *codedError
	if errors.As(err, &ce) {
		if ce.err != nil {
			fmt.Fprintln(a.errOut, "bcrypt:", ce.err)
		}
		return ce.code
	}
	fmt.Fprintln(a.errOut, "bcrypt:", err)
	return exitError
}
