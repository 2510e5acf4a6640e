package order

import (
	"math/big"
	"strings"
)

// CompareTables orders two table identifiers. It returns -1, 0 or +1.
//
// When both identifiers parse as base-10 integers they compare numerically,
// so "9" sorts before "10". When neither parses they compare as strings.
// When exactly one parses, the numeric identifier sorts first.
func CompareTables(a, b string) int {
	na, aok := tableNumber(a)
	nb, bok := tableNumber(b)
	switch {
	case aok && bok:
		return na.Cmp(nb)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

// tableNumber parses s as an integer of arbitrary size, ignoring surrounding spaces.
func tableNumber(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}
