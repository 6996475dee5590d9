package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCodeIsSixDigitsInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateCode()
		assert.NoError(t, err)
		seen[code] = true
	}
	// 100 draws from 900k values colliding down to a single code would mean
	// the generator is broken
	assert.Greater(t, len(seen), 1)
}
