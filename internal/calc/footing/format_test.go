package footing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat3SF(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.2345, "1.23"},
		{100.0, "100"},
		{0.001234, "0.00123"},
		{23.888888888888889, "23.9"},
		{1.2, "1.2"},
		{0, "0"},
		{123456, "123000"},
		{-1.2345, "-1.23"},
		{250, "250"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format3SF(tt.in), "Format3SF(%v)", tt.in)
	}
}
