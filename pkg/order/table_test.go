package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareTables(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"5", "10", -1},
		{"10", "5", 1},
		{"7", "7", 0},
		{"07", "7", 0},
		{" 3", "3", 0},
		{"-1", "0", -1},
		{"5", "apple", -1},
		{"apple", "5", 1},
		{"apple", "banana", -1},
		{"patio", "patio", 0},
		{"", "1", 1},
		{"99999999999999999999999", "100000000000000000000000", -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CompareTables(c.a, c.b), "CompareTables(%q, %q)", c.a, c.b)
	}
}

func TestCompareTablesIsTotal(t *testing.T) {
	keys := []string{"5", "apple", "2", "10", "bar", "", "02"}
	for _, a := range keys {
		for _, b := range keys {
			assert.Equal(t, -CompareTables(b, a), CompareTables(a, b), "antisymmetry %q %q", a, b)
		}
	}
}
