package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info HASH",
		Short: "Print the version and cost recorded in a hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := bcrypt.Parse(args[0])
			if err != nil {
				return err
			}
			a.log.WithField("salt", parts.Salt()).Debug("parsed hash")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", parts.Version())
			fmt.Fprintf(out, "cost:    %d\n", parts.Cost())
			return nil
		},
	}
}
