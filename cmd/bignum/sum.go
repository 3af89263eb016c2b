package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Read a b c d from stdin and print a+b, a+c and a+d",
		Long: "Read four whitespace separated operands from stdin: two arbitrarily large\n" +
			"integers a and b, a native int c and a native int64 d. Print a+b, a+c and\n" +
			"a+d on separate lines.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var x, y bignum.Int
			var c int
			var d int64
			if _, err := fmt.Fscan(a.in, &x, &y, &c, &d); err != nil {
				return errors.Wrap(err, "failed to read operands")
			}
			a.l.Debug("Read operands",
				zap.Stringer("a", x),
				zap.Stringer("b", y),
				zap.Int("c", c),
				zap.Int64("d", d),
			)

			a.emit(x.Add(y))
			a.emit(x.Add(bignum.IntFromInt(c)))
			a.emit(x.Add64(d))
			return nil
		},
	}
}
