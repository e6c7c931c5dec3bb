package entities

import (
	"fmt"
	"strconv"
)

const (
	MinLottoNumber = 1
	MaxLottoNumber = 45
)

// LottoNumber is a single validated lottery number in [MinLottoNumber, MaxLottoNumber]
type LottoNumber struct {
	value int
}

// NewLottoNumber validates n and wraps it
func NewLottoNumber(n int) (LottoNumber, error) {
	if n < MinLottoNumber || n > MaxLottoNumber {
		return LottoNumber{}, fmt.Errorf("%w: got %d", ErrOutOfRange, n)
	}
	return LottoNumber{value: n}, nil
}

// Int returns the underlying integer value
func (n LottoNumber) Int() int {
	return n.value
}

// Compare orders numbers by value: negative if n < other, zero if equal, positive otherwise
func (n LottoNumber) Compare(other LottoNumber) int {
	return n.value - other.value
}

func (n LottoNumber) String() string {
	return strconv.Itoa(n.value)
}
