package config

import (
	"strings"

	"github.com/spf13/viper"
)

const ENV_PREFIX = "BIGNUM"

// Keys shared by flags, environment variables and config files. A key such
// as "pow.base" is read from --pow.base, BIGNUM_POW_BASE or the "base" entry
// of the "pow" table in a config file.
const (
	ConfigFile = "config"
	Debug      = "debug"
	Dump       = "dump"
	FactorialN = "factorial.n"
	PowBase    = "pow.base"
	PowExp     = "pow.exp"
)

const (
	DefaultFactorialN = 999
	DefaultPowBase    = "2"
	DefaultPowExp     = "1000"
)

type Config struct {
	Debug bool
	Dump  bool

	FactorialN uint64

	// Pow operands are kept as text; they may be arbitrarily large.
	PowBase string
	PowExp  string
}

func NewConfig(v *viper.Viper) *Config {
	return &Config{
		Debug:      v.GetBool(Debug),
		Dump:       v.GetBool(Dump),
		FactorialN: v.GetUint64(FactorialN),
		PowBase:    v.GetString(PowBase),
		PowExp:     v.GetString(PowExp),
	}
}

// KebabToSnakeCase converts a flag name to the key it is stored under.
func KebabToSnakeCase(str string) string {
	return strings.ReplaceAll(str, "-", "_")
}
