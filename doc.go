/*
Package bignum provides Int, an arbitrary-precision signed integer whose only
limit is available memory, implementing the arithmetic, comparison and
conversion operations of a native integer.

Int is a value type; all operations return new values. The magnitude is held
as digit groups of nine decimal digits (radix 1e9), which makes decimal
conversion cheap and keeps every digit product inside a uint64.

Simple example:

	f := bignum.IntFrom64(1)
	for k := int64(2); k < 1000; k++ {
		f = f.Mul64(k)
	}
	fmt.Println(f.Len10())
	// Output: 2565

Int values can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int

Division and remainder return ErrDivisionByZero when the divisor is zero.
Rem always returns a value in [0, |n|), which differs from Go's truncated %
for negative dividends:

	r, _ := bignum.IntFrom64(-7).Rem(bignum.IntFrom64(3))
	fmt.Println(r)
	// Output: 2

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Scanner
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bignum
