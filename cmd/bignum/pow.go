package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow [base [exp]]",
		Short: "Print base raised to the power exp",
		Long: "Print base raised to the power exp. Missing operands are taken from\n" +
			"--pow.base and --pow.exp. A negative exponent is treated as its absolute value.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseStr, expStr := a.cfg.PowBase, a.cfg.PowExp
			if len(args) > 0 {
				baseStr = args[0]
			}
			if len(args) > 1 {
				expStr = args[1]
			}

			base, err := parseInt("base", baseStr)
			if err != nil {
				return err
			}
			exp, err := parseInt("exponent", expStr)
			if err != nil {
				return err
			}

			result := base.Pow(exp)
			a.l.Debug("Computed power",
				zap.Stringer("base", base),
				zap.Stringer("exp", exp),
				zap.Int("decimalDigits", result.Len10()),
			)
			a.emit(result)
			return nil
		},
	}
}
