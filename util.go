package bignum

type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// Max returns the larger of a and b. If they are equal, b is returned.
func Max(a, b Int) Int {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Min returns the smaller of a and b. If they are equal, b is returned.
func Min(a, b Int) Int {
	if a.LessThan(b) {
		return a
	}
	return b
}

// RandInt generates a random Int of up to ndigits digit groups (each holding
// 9 decimal digits) and a random sign, from an external source.
func RandInt(source RandSource, ndigits int) (out Int) {
	if ndigits <= 0 {
		return zeroInt
	}
	digits := make(nat, ndigits)
	for idx := range digits {
		digits[idx] = uint32(source.Uint64() % radix)
	}
	return newInt(source.Uint64()&1 == 1, digits)
}

// Factorial returns n!.
func Factorial(n uint64) Int {
	out := oneInt
	for k := uint64(2); k <= n; k++ {
		out = out.Mul(IntFromU64(k))
	}
	return out
}
