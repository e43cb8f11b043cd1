package nz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestI128TwosComplement(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo uint64
		want   string
		sign   int
	}{
		{"one", 0, 1, "1", 1},
		{"minus one", ^uint64(0), ^uint64(0), "-1", -1},
		{"max", 1<<63 - 1, ^uint64(0), "170141183460469231731687303715884105727", 1},
		{"min", 1 << 63, 0, "-170141183460469231731687303715884105728", -1},
		{"minus two to the 100", ^uint64(0) &^ (1<<36 - 1), 0, "-1267650600228229401496703205376", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := I128FromRaw(tt.hi, tt.lo)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, tt.sign, v.Sign())
			assert.Equal(t, tt.hi, v.Hi())
			assert.Equal(t, tt.lo, v.Lo())
		})
	}
}

func TestI128Zero(t *testing.T) {
	zero := I128FromRaw(0, 0)
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, "0", zero.String())
}

func TestI128CmpIsSigned(t *testing.T) {
	minusOne := I128FromRaw(^uint64(0), ^uint64(0))
	one := I128FromRaw(0, 1)
	min := I128FromRaw(1<<63, 0)
	max := I128FromRaw(1<<63-1, ^uint64(0))

	// Under unsigned comparison minusOne would be the largest value; the
	// sign-bit bias must order it below one.
	assert.Equal(t, -1, minusOne.Cmp(one))
	assert.Equal(t, 1, one.Cmp(minusOne))
	assert.Equal(t, -1, min.Cmp(minusOne))
	assert.Equal(t, -1, min.Cmp(max))
	assert.Equal(t, 0, min.Cmp(min))
}
