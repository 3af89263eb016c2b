package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) factorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial [n]",
		Short: "Print n!",
		Long:  "Print n!. If n is omitted, the value of --factorial.n is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.FactorialN
			if len(args) > 0 {
				var err error
				n, err = strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return errors.Wrapf(err, "invalid factorial operand %q", args[0])
				}
			}

			f := bignum.Factorial(n)
			a.l.Debug("Computed factorial",
				zap.Uint64("n", n),
				zap.Int("decimalDigits", f.Len10()),
			)
			a.emit(f)
			return nil
		},
	}
}
