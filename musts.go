package bignum

import "fmt"

// MustIntFromString is like [IntFromString] but panics if s is malformed. It
// is intended for literals in tests and initialisers.
func MustIntFromString(s string) Int {
	i, err := IntFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustIntFromString(%q) failed: %v", s, err))
	}
	return i
}

// MustQuo is like [Int.Quo] but panics if n is zero.
func (i Int) MustQuo(n Int) Int {
	q, err := i.Quo(n)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", n, err))
	}
	return q
}

// MustRem is like [Int.Rem] but panics if n is zero.
func (i Int) MustRem(n Int) Int {
	r, err := i.Rem(n)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", n, err))
	}
	return r
}
