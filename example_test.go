package bignum_test

import (
	"fmt"
	"strings"

	bignum "github.com/shabbyrobe/go-bignum"
)

func Example() {
	f := bignum.IntFrom64(1)
	for k := int64(2); k < 1000; k++ {
		f = f.Mul64(k)
	}
	fmt.Println(f.Len10())
	// Output: 2565
}

func ExampleInt_Rem() {
	for _, tc := range [][2]int64{{7, 3}, {-7, 3}, {7, -3}, {-7, -3}} {
		r, _ := bignum.IntFrom64(tc[0]).Rem(bignum.IntFrom64(tc[1]))
		fmt.Printf("%d %% %d = %d\n", tc[0], tc[1], r)
	}
	// Output:
	// 7 % 3 = 1
	// -7 % 3 = 2
	// 7 % -3 = 1
	// -7 % -3 = 2
}

func ExampleInt_Quo() {
	q, _ := bignum.IntFrom64(-7).Quo(bignum.IntFrom64(2))
	fmt.Println(q)

	_, err := bignum.IntFrom64(1).Quo(bignum.Int{})
	fmt.Println(err)
	// Output:
	// -3
	// bignum: division by zero
}

func ExampleInt_Pow() {
	fmt.Println(bignum.IntFrom64(2).Pow64(100))
	// Output: 1267650600228229401496703205376
}

func ExampleInt_Scan() {
	var a, b bignum.Int
	var c int64
	in := strings.NewReader("1000000000000000000000 -1 5")
	if _, err := fmt.Fscan(in, &a, &b, &c); err != nil {
		panic(err)
	}
	fmt.Println(a.Add(b))
	fmt.Println(a.Mul64(c))
	// Output:
	// 999999999999999999999
	// 5000000000000000000000
}

func ExampleInt_Format() {
	v := bignum.MustIntFromString("-123456789012")
	fmt.Printf("%d|%20d|%-20s|%+d\n", v, v, v, v.Neg())
	// Output: -123456789012|       -123456789012|-123456789012       |+123456789012
}

func ExampleIntFromString() {
	_, err := bignum.IntFromString("12a4")
	fmt.Println(err)
	// Output: bignum: invalid decimal "12a4" at offset 2
}
