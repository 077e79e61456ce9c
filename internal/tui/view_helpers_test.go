package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "bank", max: 10, want: "bank"},
		{name: "no limit", in: "bank", max: 0, want: "bank"},
		{name: "ellipsis", in: "very long name", max: 8, want: "very ..."},
		{name: "tiny limit", in: "abcdef", max: 2, want: "ab"},
		{name: "multibyte", in: "почта-яндекс", max: 6, want: "поч..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash([]byte{}))
	assert.Equal(t, "x", valueOrDash([]byte("x")))
}
