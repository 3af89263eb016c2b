package bignum

// nat is an unsigned magnitude in radix R, least-significant digit first.
//
// A nat returned by any function in this file is normalized: it has at least
// one digit and no most-significant zero digits. It may alias an input or
// natZero. Inputs are never written to, so Int values can share digit slices.
type nat []uint32

// natZero is shared by every canonical zero. It must never be written to.
var natZero = nat{0}

func natFrom64(v uint64) nat {
	if v == 0 {
		return natZero
	}
	z := make(nat, 0, 3)
	for v > 0 {
		z = append(z, uint32(v%radix))
		v /= radix
	}
	return z
}

// norm strips most-significant zero digits, leaving at least one digit.
func (z nat) norm() nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return natZero
	}
	return z[:i]
}

func (x nat) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// cmp compares two normalized magnitudes: fewer digits is smaller, otherwise
// the first differing digit from the most-significant end decides.
func (x nat) cmp(y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x nat) equal(y nat) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// add returns x + y.
func (x nat) add(y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)

	var carry uint32
	for i := 0; i < len(x); i++ {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		// x[i] + y[i] + carry <= 2*(R-1) + 1, which fits comfortably in a uint32.
		carry = 0
		if s >= radix {
			s -= radix
			carry = 1
		}
		z[i] = s
	}
	z[len(x)] = carry
	return z.norm()
}

// sub returns x - y. x must be >= y.
func (x nat) sub(y nat) nat {
	z := make(nat, len(x))

	var borrow int64
	for i := 0; i < len(x); i++ {
		d := int64(x[i]) - borrow
		if i < len(y) {
			d -= int64(y[i])
		}
		borrow = 0
		if d < 0 {
			d += radix
			borrow = 1
		}
		z[i] = uint32(d)
	}
	if borrow != 0 {
		panic("bignum: magnitude underflow")
	}
	return z.norm()
}

// mul returns x * y using the schoolbook method. Each product of two digits
// plus the running carry and the partial sum stays below R*R, well inside a
// uint64.
func (x nat) mul(y nat) nat {
	if x.isZero() || y.isZero() {
		return natZero
	}
	z := make(nat, len(x)+len(y))
	for i := 0; i < len(x); i++ {
		xi := uint64(x[i])
		if xi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < len(y) || carry != 0; j++ {
			cur := uint64(z[i+j]) + carry
			if j < len(y) {
				cur += xi * uint64(y[j])
			}
			z[i+j] = uint32(cur % radix)
			carry = cur / radix
		}
	}
	return z.norm()
}

// mulDigit returns x * d for a single digit d < R.
func (x nat) mulDigit(d uint32) nat {
	if d == 0 || x.isZero() {
		return natZero
	}
	z := make(nat, len(x)+1)
	var carry uint64
	for i := 0; i < len(x); i++ {
		cur := uint64(x[i])*uint64(d) + carry
		z[i] = uint32(cur % radix)
		carry = cur / radix
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// shiftIn returns x*R + d, the "bring down the next digit" step of long
// division.
func (x nat) shiftIn(d uint32) nat {
	if x.isZero() {
		if d == 0 {
			return natZero
		}
		return nat{d}
	}
	z := make(nat, len(x)+1)
	z[0] = d
	copy(z[1:], x)
	return z
}

// quo returns the quotient and remainder of x / y by long division in radix
// R. Each quotient digit is found by binary search over [0, R), relying on
// q*y growing monotonically with q. y must not be zero.
func (x nat) quo(y nat) (q, r nat) {
	if y.isZero() {
		panic("bignum: division by zero")
	}
	if x.cmp(y) < 0 {
		return natZero, x
	}

	q = make(nat, len(x))
	r = natZero
	for i := len(x) - 1; i >= 0; i-- {
		r = r.shiftIn(x[i])
		if r.cmp(y) < 0 {
			continue // q[i] == 0
		}

		var digit uint32
		lo, hi := uint32(1), uint32(radix-1)
		for lo <= hi {
			m := lo + (hi-lo)/2
			if y.mulDigit(m).cmp(r) <= 0 {
				digit = m
				lo = m + 1
			} else {
				hi = m - 1
			}
		}

		q[i] = digit
		r = r.sub(y.mulDigit(digit))
	}
	return q.norm(), r
}

// digits10 returns the number of decimal digits in x.
func (x nat) digits10() int {
	top := x[len(x)-1]
	n := 1
	for top >= 10 {
		top /= 10
		n++
	}
	return n + (len(x)-1)*radixDigits
}
