package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/internal/config"
	"github.com/shabbyrobe/go-bignum/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v   *viper.Viper
	cfg *config.Config
	l   *zap.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// loggerOutput is passed to logger.NewLogger; empty means stderr.
	loggerOutput []string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      newViper(),
		in:     in,
		out:    out,
		errOut: errOut,
	}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Exact integer arithmetic on arbitrarily large decimal numbers",

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.l.Sync()
		},
	}
	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().String(config.ConfigFile, "", `Path to a config file (yaml, toml or json)`)
	rootCmd.PersistentFlags().Bool(config.Debug, false, `"true" or "false"`)
	rootCmd.PersistentFlags().Bool(config.Dump, false, `Dump the digit groups of each result to stderr`)
	rootCmd.PersistentFlags().Uint64(config.FactorialN, config.DefaultFactorialN, `Default operand for the factorial command`)
	rootCmd.PersistentFlags().String(config.PowBase, config.DefaultPowBase, `Default base for the pow command`)
	rootCmd.PersistentFlags().String(config.PowExp, config.DefaultPowExp, `Default exponent for the pow command`)

	rootCmd.AddCommand(a.factorialCmd())
	rootCmd.AddCommand(a.powCmd())
	rootCmd.AddCommand(a.sumCmd())
	rootCmd.AddCommand(a.calcCmd())

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		a.v.BindPFlag(key, f) //nolint:errcheck
		a.v.BindEnv(key)      //nolint:errcheck
	})

	return rootCmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(config.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

func (a *app) init() error {
	if file := a.v.GetString(config.ConfigFile); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %q", file)
		}
	}
	a.cfg = config.NewConfig(a.v)

	l, err := logger.NewLogger(&logger.LoggerConfig{
		Debug:       a.cfg.Debug,
		OutputPaths: a.loggerOutput,
	})
	if err != nil {
		return errors.Wrap(err, "failed to setup logger")
	}
	a.l = l
	a.l.Debug("Config", zap.Any("config", a.cfg))
	return nil
}

type intDump struct {
	Neg    bool
	Digits []uint32
}

// emit writes v to the command output, and its digit groups to stderr when
// --dump is set.
func (a *app) emit(v bignum.Int) {
	fmt.Fprintln(a.out, v)
	if a.cfg.Dump {
		spew.Fdump(a.errOut, intDump{Neg: v.Sign() < 0, Digits: v.Digits()})
	}
}

func parseInt(what, s string) (bignum.Int, error) {
	v, err := bignum.IntFromString(s)
	if err != nil {
		return v, errors.Wrapf(err, "invalid %s", what)
	}
	return v, nil
}
