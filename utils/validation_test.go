package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+355 68 289 7018": "+355682897018",
		"+355-69-123-4567": "+355691234567",
		"(068) 289 7018":   "0682897018",
		"  +355691234567 ": "+355691234567",
		"":                 "",
		"   ":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), "input %q", in)
	}
}
