package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnescape(t *testing.T) {
	data := map[string]string{
		"no references here":   "no references here",
		"1 &lt; 2":             "1 < 2",
		"2 &gt; 1":             "2 > 1",
		"a &amp; b":            "a & b",
		"&apos;x&apos;":        "'x'",
		"&quot;x&quot;":        `"x"`,
		"&#65;&#x42;&#X43;":    "ABC",
		"&#233;":               "é",
		"&#x1F600;":            "\U0001F600",
		"&amp;amp;":            "&amp;",
		"&lt;&gt;&amp;":        "<>&",
		"tail &amp;":           "tail &",
	}
	for input, expected := range data {
		got, err := Unescape([]byte(input))
		require.NoError(t, err, "Unescape should succeed for '%s'", input)
		require.Equal(t, expected, string(got), "Unescape result matches for '%s'", input)
	}
}

func TestUnescapeBad(t *testing.T) {
	data := map[string]error{
		"&bogus;":   ErrEntityNotFound,
		"&lt":       ErrSemicolonRequired,
		"a & b":     ErrSemicolonRequired,
		"&;":        ErrEntityNotFound,
		"&#;":       ErrEntityNotFound,
		"&#x;":      ErrInvalidCharRef,
		"&#xZZ;":    ErrInvalidCharRef,
		"&#0;":      ErrInvalidCharRef,
		"&#x110000;": ErrInvalidCharRef,
		"&#xD800;":  ErrInvalidCharRef,
	}
	for input, expected := range data {
		_, err := Unescape([]byte(input))
		require.ErrorIs(t, err, expected, "Unescape should fail for '%s'", input)
	}
}
