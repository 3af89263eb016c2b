package bignum

import (
	"math/big"
)

const (
	// radix is the base of each digit group in an Int's magnitude. It is the
	// largest power of ten whose square, plus carries, fits in a uint64.
	radix = 1_000_000_000

	// radixDigits is the number of decimal digits held by one digit group.
	radixDigits = 9

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
)

var (
	zeroInt = Int{digits: natZero}
	oneInt  = Int{digits: nat{1}}
	twoInt  = Int{digits: nat{2}}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	bigRadix = new(big.Int).SetUint64(radix)
)
