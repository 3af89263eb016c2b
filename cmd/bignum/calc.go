package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type calcOp func(x, y bignum.Int) (bignum.Int, error)

func noErr(fn func(x, y bignum.Int) bignum.Int) calcOp {
	return func(x, y bignum.Int) (bignum.Int, error) {
		return fn(x, y), nil
	}
}

var calcOps = map[string]calcOp{
	"+":   noErr(bignum.Int.Add),
	"-":   noErr(bignum.Int.Sub),
	"*":   noErr(bignum.Int.Mul),
	"/":   bignum.Int.Quo,
	"%":   bignum.Int.Rem,
	"pow": noErr(bignum.Int.Pow),
	"min": noErr(bignum.Min),
	"max": noErr(bignum.Max),
	"cmp": noErr(func(x, y bignum.Int) bignum.Int {
		return bignum.IntFromInt(x.Cmp(y))
	}),
}

func calcOpNames() string {
	names := make([]string, 0, len(calcOps))
	for k := range calcOps {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Evaluate a single binary operation",
		Long: fmt.Sprintf("Evaluate a single binary operation. Supported ops: %s\n\n"+
			"Division truncates towards zero and %% always returns a value in [0, |b|).\n"+
			"Pass -- before the operands if a starts with '-', e.g. 'bignum calc -- -7 %% 3'.",
			calcOpNames()),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := calcOps[args[1]]
			if !ok {
				return errors.Errorf("unknown op %q, expected one of: %s", args[1], calcOpNames())
			}
			x, err := parseInt("left operand", args[0])
			if err != nil {
				return err
			}
			y, err := parseInt("right operand", args[2])
			if err != nil {
				return err
			}

			result, err := op(x, y)
			if err != nil {
				return errors.Wrapf(err, "%s %s %s", x, args[1], y)
			}
			a.l.Debug("Evaluated",
				zap.String("op", args[1]),
				zap.Stringer("result", result),
			)
			a.emit(result)
			return nil
		},
	}
}
