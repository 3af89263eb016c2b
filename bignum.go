package bignum

import (
	"errors"
)

// Int is an arbitrary-precision signed integer.
//
// Int is a value type; all operations return new values and never modify
// their operands, so an Int can be copied by assignment and shared freely.
// The zero value is the number 0.
type Int struct {
	neg    bool // true iff the value is strictly negative
	digits nat  // magnitude in radix 1e9, least-significant digit first
}

var (
	// ErrDivisionByZero is returned by Quo, Rem and friends when the divisor
	// is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")
)

func newInt(neg bool, digits nat) Int {
	digits = digits.norm()
	if digits.isZero() {
		neg = false
	}
	return Int{neg: neg, digits: digits}
}

// mag returns the magnitude, treating the zero value's nil digits as [0].
func (i Int) mag() nat {
	if len(i.digits) == 0 {
		return natZero
	}
	return i.digits
}

// Clone returns a copy of i that shares no memory with it.
func (i Int) Clone() Int {
	d := make(nat, len(i.mag()))
	copy(d, i.mag())
	return Int{neg: i.neg, digits: d}
}

func (i Int) IsZero() bool { return i.mag().isZero() }

// Bool reports whether i is non-zero, the way an integer converts to a
// boolean in a condition.
func (i Int) Bool() bool { return !i.IsZero() }

func (i Int) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Odd reports whether i is odd. Since R is even, only the lowest digit
// matters.
func (i Int) Odd() bool { return i.mag()[0]&1 == 1 }

func (i Int) Even() bool { return !i.Odd() }

// Plus returns i unchanged; it is the unary plus.
func (i Int) Plus() Int { return i }

func (i Int) Neg() Int {
	if i.IsZero() {
		return zeroInt
	}
	return Int{neg: !i.neg, digits: i.mag()}
}

func (i Int) Abs() Int {
	return Int{digits: i.mag()}
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := i.mag().cmp(n.mag())
	if i.neg {
		return -c
	}
	return c
}

// CmpAbs compares |i| to |n|.
func (i Int) CmpAbs(n Int) int {
	return i.mag().cmp(n.mag())
}

func (i Int) Equal(n Int) bool {
	return i.neg == n.neg && i.mag().equal(n.mag())
}

func (i Int) LessThan(n Int) bool {
	if i.neg != n.neg {
		return i.neg
	}
	if i.neg {
		return n.mag().cmp(i.mag()) < 0
	}
	return i.mag().cmp(n.mag()) < 0
}

func (i Int) LessOrEqualTo(n Int) bool { return !n.LessThan(i) }

func (i Int) GreaterThan(n Int) bool { return n.LessThan(i) }

func (i Int) GreaterOrEqualTo(n Int) bool { return !i.LessThan(n) }

// Add returns i + n.
//
// Every combination of signs is reduced to either a magnitude addition or a
// magnitude subtraction of the smaller magnitude from the larger one.
func (i Int) Add(n Int) Int {
	x, y := i.mag(), n.mag()
	if i.neg == n.neg {
		// (+x)+(+y) == x+y; (-x)+(-y) == -(x+y)
		return newInt(i.neg, x.add(y))
	}

	// Mixed signs: the result takes the sign of the larger magnitude.
	switch x.cmp(y) {
	case 0:
		return zeroInt
	case 1:
		return newInt(i.neg, x.sub(y))
	default:
		return newInt(n.neg, y.sub(x))
	}
}

// Sub returns i - n.
func (i Int) Sub(n Int) Int {
	// i - n == i + (-n); n.mag() is passed through untouched so this costs no
	// more than the addition itself.
	return i.Add(Int{neg: !n.neg && !n.IsZero(), digits: n.mag()})
}

func (i Int) Inc() Int { return i.Add(oneInt) }

func (i Int) Dec() Int { return i.Sub(oneInt) }

// Mul returns i * n.
func (i Int) Mul(n Int) Int {
	return newInt(i.neg != n.neg, i.mag().mul(n.mag()))
}

// Quo returns the quotient i/n, truncated towards zero. If n == 0,
// ErrDivisionByZero is returned and the quotient is zero.
func (i Int) Quo(n Int) (q Int, err error) {
	if n.IsZero() {
		return zeroInt, ErrDivisionByZero
	}
	qd, _ := i.mag().quo(n.mag())
	return newInt(i.neg != n.neg, qd), nil
}

// Rem returns the remainder of i/n, always in the range [0, |n|).
//
// Rem is derived from Quo as i - (i/n)*n, with |n| added when that value is
// negative. Unlike Go's % operator, the result is never negative:
//
//	-7 % 3  == 2
//	 7 % -3 == 1
//	-7 % -3 == 2
//
// If n == 0, ErrDivisionByZero is returned.
func (i Int) Rem(n Int) (r Int, err error) {
	_, r, err = i.QuoRem(n)
	return r, err
}

// QuoRem returns both the truncated quotient of Quo and the non-negative
// remainder of Rem. Note that for a negative i with a non-zero remainder,
// q*n + r == i + |n| rather than i.
func (i Int) QuoRem(n Int) (q, r Int, err error) {
	q, err = i.Quo(n)
	if err != nil {
		return zeroInt, zeroInt, err
	}
	r = i.Sub(q.Mul(n))
	if r.neg {
		r = r.Add(n.Abs())
	}
	return q, r, nil
}

// Pow returns i raised to the power e, using square-and-multiply. A negative
// exponent is treated as its absolute value.
func (i Int) Pow(e Int) Int {
	result := oneInt
	base := i
	e = e.Abs()
	for !e.IsZero() {
		if e.Odd() {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e, _ = e.Quo(twoInt)
	}
	return result
}

// Pow64 is like Pow, with a native exponent.
func (i Int) Pow64(e uint64) Int {
	return i.Pow(IntFromU64(e))
}

func (i Int) Add64(n int64) Int { return i.Add(IntFrom64(n)) }
func (i Int) Sub64(n int64) Int { return i.Sub(IntFrom64(n)) }
func (i Int) Mul64(n int64) Int { return i.Mul(IntFrom64(n)) }

func (i Int) Quo64(n int64) (Int, error) { return i.Quo(IntFrom64(n)) }
func (i Int) Rem64(n int64) (Int, error) { return i.Rem(IntFrom64(n)) }

// AddAssign sets z to z + n.
func (z *Int) AddAssign(n Int) *Int {
	*z = z.Add(n)
	return z
}

// SubAssign sets z to z - n.
func (z *Int) SubAssign(n Int) *Int {
	*z = z.Sub(n)
	return z
}

// MulAssign sets z to z * n.
func (z *Int) MulAssign(n Int) *Int {
	*z = z.Mul(n)
	return z
}

// QuoAssign sets z to z / n. z is left untouched if n == 0.
func (z *Int) QuoAssign(n Int) error {
	q, err := z.Quo(n)
	if err != nil {
		return err
	}
	*z = q
	return nil
}

// RemAssign sets z to z % n. z is left untouched if n == 0.
func (z *Int) RemAssign(n Int) error {
	r, err := z.Rem(n)
	if err != nil {
		return err
	}
	*z = r
	return nil
}

// PreInc increments z and returns the new value, like ++z.
func (z *Int) PreInc() Int {
	*z = z.Inc()
	return *z
}

// PostInc increments z and returns the old value, like z++.
func (z *Int) PostInc() Int {
	old := *z
	*z = z.Inc()
	return old
}

// PreDec decrements z and returns the new value, like --z.
func (z *Int) PreDec() Int {
	*z = z.Dec()
	return *z
}

// PostDec decrements z and returns the old value, like z--.
func (z *Int) PostDec() Int {
	old := *z
	*z = z.Dec()
	return old
}
