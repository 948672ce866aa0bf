package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "float text", raw: "38.0", want: "38"},
		{name: "fraction is truncated", raw: "38.7", want: "38"},
		{name: "integer text", raw: "101", want: "101"},
		{name: "empty", raw: "", want: ""},
		{name: "spaces only", raw: "   ", want: ""},
		{name: "surrounding spaces", raw: " 42.0 ", want: "42"},
		{name: "uuid passes through", raw: "0192f7c4-8a1b-7d2e-9f00-1234567890ab", want: "0192f7c4-8a1b-7d2e-9f00-1234567890ab"},
		{name: "dotted non numeric", raw: "v1.beta", want: "v1.beta"},
		{name: "exponent", raw: "3.0e2", want: "300"},
		{name: "leading dot", raw: ".0", want: "0"},
		{name: "negative", raw: "-5.0", want: "-5"},
		{name: "large id keeps digits", raw: "12345678901234567.0", want: "12345678901234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeID(tt.raw))
		})
	}
}

func TestNormalizeID_Idempotent(t *testing.T) {
	inputs := []string{"38.0", "38", "", "abc", "a.b.c", "1.5", "-0.0", "3.0e2", ".25", " 7.0 ", "x.1", "9007199254740993.0"}

	for _, in := range inputs {
		once := NormalizeID(in)
		assert.Equal(t, once, NormalizeID(once), "input %q", in)
	}
}
