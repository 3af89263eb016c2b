package bignum

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every *ParseError.
var ErrSyntax = errors.New("invalid syntax")

// ParseError reports malformed decimal input to IntFromString and the
// decoders built on it.
type ParseError struct {
	Input  string
	Offset int // byte offset of the first offending character
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bignum: invalid decimal %q at offset %d", e.Input, e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

func IntFrom64(v int64) Int {
	if v < 0 {
		// -v overflows for math.MinInt64, but the uint64 conversion of the
		// two's complement negation is still exact.
		return Int{neg: true, digits: natFrom64(uint64(-v))}
	}
	return Int{digits: natFrom64(uint64(v))}
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return Int{digits: natFrom64(v)} }

// IntFromString creates an Int from a decimal string with an optional leading
// '-'. The empty string is zero. Leading zeros are accepted and discarded.
// Anything else, including a '+' sign or a lone '-', is a *ParseError.
func IntFromString(s string) (out Int, err error) {
	if s == "" {
		return zeroInt, nil
	}

	neg := s[0] == '-'
	body := s
	if neg {
		body = s[1:]
		if body == "" {
			return zeroInt, &ParseError{Input: s, Offset: 1}
		}
	}
	start := len(s) - len(body)
	for idx := 0; idx < len(body); idx++ {
		if c := body[idx]; c < '0' || c > '9' {
			return zeroInt, &ParseError{Input: s, Offset: start + idx}
		}
	}

	// Groups of radixDigits characters are taken from the least-significant
	// end; the leftover at the front becomes the top digit.
	digits := make(nat, 0, (len(body)+radixDigits-1)/radixDigits)
	for end := len(body); end > 0; end -= radixDigits {
		begin := end - radixDigits
		if begin < 0 {
			begin = 0
		}
		var d uint32
		for _, c := range body[begin:end] {
			d = d*10 + uint32(c-'0')
		}
		digits = append(digits, d)
	}
	return newInt(neg, digits), nil
}

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	if v.Sign() == 0 {
		return zeroInt
	}
	var (
		rest  = new(big.Int).Abs(v)
		digit = new(big.Int)
	)
	digits := make(nat, 0, v.BitLen()/29+1)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, bigRadix, digit)
		digits = append(digits, uint32(digit.Uint64()))
	}
	return newInt(v.Sign() < 0, digits)
}

func (i Int) String() string {
	d := i.mag()
	var sb strings.Builder
	sb.Grow(len(d)*radixDigits + 1)
	if i.neg {
		sb.WriteByte('-')
	}

	top := len(d) - 1
	sb.WriteString(strconv.FormatUint(uint64(d[top]), 10))

	var scratch [radixDigits]byte
	for idx := top - 1; idx >= 0; idx-- {
		v := d[idx]
		for pos := radixDigits - 1; pos >= 0; pos-- {
			scratch[pos] = byte('0' + v%10)
			v /= 10
		}
		sb.Write(scratch[:])
	}
	return sb.String()
}

// Format implements fmt.Formatter. The 'd', 's' and 'v' verbs are
// supported, along with the '+', '-' and '0' flags and a width.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", c, i.String())
		return
	}

	str := i.Abs().String()
	var sign string
	if i.neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	}

	width, hasWidth := s.Width()
	pad := 0
	if hasWidth {
		pad = width - len(sign) - len(str)
	}
	if pad <= 0 {
		fmt.Fprint(s, sign+str)
		return
	}

	switch {
	case s.Flag('-'):
		fmt.Fprint(s, sign+str+strings.Repeat(" ", pad))
	case s.Flag('0'):
		fmt.Fprint(s, sign+strings.Repeat("0", pad)+str)
	default:
		fmt.Fprint(s, strings.Repeat(" ", pad)+sign+str)
	}
}

// Scan implements fmt.Scanner. It consumes one whitespace-delimited token and
// parses it with IntFromString, so an Int can be read with fmt.Fscan
// alongside native integers.
func (z *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return fmt.Errorf("bignum: invalid verb %%%c for Int", verb)
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.ErrUnexpectedEOF
	}
	v, err := IntFromString(string(tok))
	if err != nil {
		return err
	}
	*z = v
	return nil
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	d := i.mag()
	var digit big.Int
	b.SetUint64(uint64(d[len(d)-1]))
	for idx := len(d) - 2; idx >= 0; idx-- {
		b.Mul(b, bigRadix)
		b.Add(b, digit.SetUint64(uint64(d[idx])))
	}
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in an int64, keeping the low 64 bits of
// the two's complement representation. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	d := i.mag()
	var acc uint64
	for idx := len(d) - 1; idx >= 0; idx-- {
		acc = acc*radix + uint64(d[idx])
	}
	if i.neg {
		acc = -acc
	}
	return int64(acc)
}

var (
	maxInt64AsInt = IntFrom64(maxInt64)
	minInt64AsInt = IntFrom64(minInt64)
)

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if len(i.mag()) > 3 {
		return false
	}
	return i.GreaterOrEqualTo(minInt64AsInt) && i.LessOrEqualTo(maxInt64AsInt)
}

// Digits returns a copy of the magnitude of i as radix 1e9 digit groups,
// least-significant first.
func (i Int) Digits() []uint32 {
	out := make([]uint32, len(i.mag()))
	copy(out, i.mag())
	return out
}

// Len10 returns the number of decimal digits in |i|. Zero has one digit.
func (i Int) Len10() int {
	return i.mag().digits10()
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("bignum: invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
