package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

func newVerifyCmd(a *app) *cobra.Command {
	var stdin bool
	cmd := &cobra.Command{
		Use:   "verify HASH [password]",
		Short: "Check a password against a hash",
		Long: `Check a password against a bcrypt hash of any version.

Prints "ok" and exits 0 on a match, prints "mismatch" and exits 1
otherwise. A malformed hash exits 2.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				password string
				err      error
			)
			switch {
			case len(args) == 2:
				password = args[1]
			case stdin:
				password, err = readFirstLine(cmd.InOrStdin())
			default:
				password, err = a.promptPassword(false)
			}
			if err != nil {
				return err
			}

			ok, err := bcrypt.Verify([]byte(password), args[0])
			if err != nil {
				return &codedError{code: exitError, err: err}
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return &codedError{code: exitMismatch}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&stdin, "stdin", false, "Read the password from the first line of standard input")
	return cmd
}
