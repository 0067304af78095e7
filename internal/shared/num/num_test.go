package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want complex128
	}{
		{"3.14", complex(3.14, 0)},
		{"-5", complex(-5, 0)},
		{"pi", complex(math.Pi, 0)},
		{"PI", complex(math.Pi, 0)},
		{"e", complex(math.E, 0)},
		{"3+4i", complex(3, 4)},
		{"3+4j", complex(3, 4)},
		{"2.5-0.5i", complex(2.5, -0.5)},
		{"4i", complex(0, 4)},
		{"-2j", complex(0, -2)},
		{"i", complex(0, 1)},
		{"-i", complex(0, -1)},
		{"1+i", complex(1, 1)},
		{"1-i", complex(1, -1)},
		{" 42 ", complex(42, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "abc", "3+", "i4", "1+2k", "--4"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := Parse(bad)
			assert.Error(t, err)
		})
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   complex128
		want string
	}{
		{complex(2, 0), "2"},
		{complex(-3.5, 0), "-3.5"},
		{complex(0, 0), "0"},
		{complex(3, 4), "3 + 4i"},
		{complex(3, -4), "3 - 4i"},
		{complex(0, 2), "2i"},
		{complex(0, -2), "-2i"},
		{complex(1, 1e-17), "1"},       // imaginary dust hidden
		{complex(2.9999999999999, 0), "3"}, // integer snap
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.in))
		})
	}
}

func TestIsReal(t *testing.T) {
	assert.True(t, IsReal(complex(1.5, 0)))
	assert.True(t, IsReal(complex(1.5, 1e-18)))
	assert.False(t, IsReal(complex(1.5, 0.1)))
}
