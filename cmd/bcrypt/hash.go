package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

// costEnv overrides the default cost when --cost is not given.
const costEnv = "BCRYPT_COST"

type hashFlags struct {
	cost    uint32
	version string
	stdin   bool
	jobs    int
}

func newHashCmd(a *app) *cobra.Command {
	f := hashFlags{}
	cmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Hash a password",
		Long: `Hash a password and print the result.

The password is taken from the argument, or with --stdin from standard
input (one password per line, one hash printed per line), or else from a
terminal prompt. The cost defaults to $` + costEnv + ` when set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cost") {
				if v, ok := os.LookupEnv(costEnv); ok {
					c, err := strconv.ParseUint(v, 10, 32)
					if err != nil {
						return fmt.Errorf("%s=%q: %w", costEnv, v, bcrypt.ErrInvalidCost)
					}
					f.cost = uint32(c)
				}
			}
			return a.runHash(cmd, f, args)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func (f *hashFlags) register(flags *pflag.FlagSet) {
	flags.Uint32VarP(&f.cost, "cost", "c", bcrypt.DefaultCost, "Work factor, 2^cost rounds")
	flags.StringVar(&f.version, "version", bcrypt.DefaultVersion.String(), "Version tag to write (2a, 2b, 2x or 2y)")
	flags.BoolVar(&f.stdin, "stdin", false, "Read passwords from standard input, one per line")
	flags.IntVarP(&f.jobs, "jobs", "j", 0, "Hashes to run at once with --stdin (default: number of CPUs)")
}

func (a *app) runHash(cmd *cobra.Command, f hashFlags, args []string) error {
	version, err := bcrypt.ParseVersion(f.version)
	if err != nil {
		return err
	}
	hasher, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: int(f.cost), Version: version})
	if err != nil {
		return err
	}

	var passwords []string
	switch {
	case len(args) == 1:
		if f.stdin {
			return fmt.Errorf("give the password as an argument or with --stdin, not both")
		}
		passwords = args
	case f.stdin:
		if passwords, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
		if len(passwords) == 0 {
			return errNoPassword
		}
	default:
		pw, err := a.promptPassword(true)
		if err != nil {
			return err
		}
		passwords = []string{pw}
	}

	opts := hashing.DefaultPoolOptions()
	if f.jobs > 0 {
		opts.MaxConcurrent = f.jobs
	}
	opts.Logger = a.log
	pool, err := hashing.NewPool(hasher, opts)
	if err != nil {
		return err
	}

	start := time.Now()
	hashes, err := pool.MakeAll(cmd.Context(), passwords)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"cost":    f.cost,
		"version": version.String(),
		"count":   len(hashes),
		"elapsed": time.Since(start),
	}).Debug("hashed")
	for _, h := range hashes {
		fmt.Fprintln(cmd.OutOrStdout(), h)
	}
	return nil
}
