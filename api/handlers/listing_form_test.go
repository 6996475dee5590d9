package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Sunrise Villa", "sunrise-villa"},
		{"Sunrise Villa, Phase 2!", "sunrise-villa-phase-2"},
		{"  2 BHK   Flat  ", "2-bhk-flat"},
		{"Already-Slugged", "already-slugged"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.title), "slugify(%q)", tt.title)
	}
}

func TestFloatOrNil(t *testing.T) {
	assert.Nil(t, floatOrNil(""))
	assert.Nil(t, floatOrNil("seven"))
	if got := floatOrNil("7500000.5"); assert.NotNil(t, got) {
		assert.Equal(t, 7500000.5, *got)
	}
}

func TestIntOrNil(t *testing.T) {
	assert.Nil(t, intOrNil(""))
	assert.Nil(t, intOrNil("3.5"))
	if got := intOrNil("3"); assert.NotNil(t, got) {
		assert.Equal(t, 3, *got)
	}
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{}, stringList(""))
	assert.Equal(t, []string{}, stringList("not json"))
	assert.Equal(t, []string{"Corner plot", "Park facing"}, stringList(`["Corner plot","Park facing"]`))
}
