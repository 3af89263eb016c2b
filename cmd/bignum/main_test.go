package main

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	a := &app{
		v:            newViper(),
		in:           strings.NewReader(stdin),
		out:          &out,
		errOut:       &errOut,
		loggerOutput: []string{os.DevNull},
	}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func Test_Factorial(t *testing.T) {
	t.Run("Test factorial of an explicit operand", func(t *testing.T) {
		out, _, err := execute(t, "", "factorial", "25")
		require.NoError(t, err)
		assert.Equal(t, "15511210043330985984000000\n", out)
	})
	t.Run("Test factorial defaults to 999", func(t *testing.T) {
		out, _, err := execute(t, "", "factorial")
		require.NoError(t, err)

		expected := new(big.Int).MulRange(1, 999).String()
		assert.Equal(t, expected+"\n", out)
		assert.Len(t, strings.TrimSpace(out), 2565)
	})
	t.Run("Test factorial default from the environment", func(t *testing.T) {
		t.Setenv("BIGNUM_FACTORIAL_N", "5")
		out, _, err := execute(t, "", "factorial")
		require.NoError(t, err)
		assert.Equal(t, "120\n", out)
	})
	t.Run("Test factorial rejects a negative operand", func(t *testing.T) {
		_, _, err := execute(t, "", "factorial", "--", "-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid factorial operand")
	})
}

func Test_Pow(t *testing.T) {
	t.Run("Test pow defaults to 2^1000", func(t *testing.T) {
		out, _, err := execute(t, "", "pow")
		require.NoError(t, err)

		expected := new(big.Int).Lsh(big.NewInt(1), 1000).String()
		assert.Equal(t, expected+"\n", out)
	})
	t.Run("Test pow with explicit operands", func(t *testing.T) {
		out, _, err := execute(t, "", "pow", "--", "-3", "5")
		require.NoError(t, err)
		assert.Equal(t, "-243\n", out)
	})
	t.Run("Test pow operands from flags", func(t *testing.T) {
		out, _, err := execute(t, "", "--pow.base", "10", "--pow.exp", "20", "pow")
		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000\n", out)
	})
	t.Run("Test pow operands from a config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bignum.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pow:\n  base: \"7\"\n  exp: \"3\"\n"), 0o600))

		out, _, err := execute(t, "", "--config", path, "pow")
		require.NoError(t, err)
		assert.Equal(t, "343\n", out)
	})
	t.Run("Test pow rejects malformed operands", func(t *testing.T) {
		_, _, err := execute(t, "", "pow", "2x", "3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid base")
	})
}

func Test_Sum(t *testing.T) {
	t.Run("Test sum of mixed operands", func(t *testing.T) {
		in := "123456789012345678901234567890 -42\n7 -9000000000000000000\n"
		out, _, err := execute(t, in, "sum")
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"123456789012345678901234567848",
			"123456789012345678901234567897",
			"123456789003345678901234567890",
		}, "\n")+"\n", out)
	})
	t.Run("Test sum with missing operands", func(t *testing.T) {
		_, _, err := execute(t, "1 2", "sum")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read operands")
	})
}

func Test_Calc(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"1000000000", "+", "1"}, "1000000001"},
		{[]string{"--", "-5", "+", "3"}, "-2"},
		{[]string{"10", "-", "12"}, "-2"},
		{[]string{"999999999", "*", "999999999"}, "999999998000000001"},
		{[]string{"--", "-7", "/", "2"}, "-3"},
		{[]string{"--", "-7", "%", "3"}, "2"},
		{[]string{"--", "7", "%", "-3"}, "1"},
		{[]string{"3", "pow", "4"}, "81"},
		{[]string{"3", "min", "4"}, "3"},
		{[]string{"3", "max", "4"}, "4"},
		{[]string{"3", "cmp", "4"}, "-1"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", append([]string{"calc"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.out+"\n", out)
		})
	}

	t.Run("Test calc division by zero", func(t *testing.T) {
		_, stderr, err := execute(t, "", "calc", "1", "/", "0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "division by zero")
		assert.Contains(t, stderr, "division by zero")
	})
	t.Run("Test calc unknown op", func(t *testing.T) {
		_, _, err := execute(t, "", "calc", "1", "^", "2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown op")
	})
}

func Test_Dump(t *testing.T) {
	out, stderr, err := execute(t, "", "--dump", "factorial", "13")
	require.NoError(t, err)
	assert.Equal(t, "6227020800\n", out)
	assert.Contains(t, stderr, "Neg: (bool) false")
	assert.Contains(t, stderr, "(uint32) 227020800")
	assert.Contains(t, stderr, "(uint32) 6")
}
