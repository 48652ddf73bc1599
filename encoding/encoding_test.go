package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	known := []string{
		"UTF-8", "utf8",
		"UTF-16", "utf-16le", "UTF-16BE",
		"euc-jp", "Shift_JIS", "cp932",
		"ISO-8859-1", "iso-8859-15",
		"windows-1252", "windows1252",
		"koi8-r", "big5", "euc-kr", "gb18030",
	}
	for _, label := range known {
		require.NotNil(t, Load(label), "Load should resolve label '%s'", label)
	}

	unknown := []string{"", "utf-9", "klingon", "ucs4be"}
	for _, label := range unknown {
		require.Nil(t, Load(label), "Load should not resolve label '%s'", label)
	}
}

func TestLoadUTF16Defaults(t *testing.T) {
	// The bare label is little-endian, and each flavor resolves to the
	// same value every time so the parser can compare by identity.
	require.Equal(t, UTF16LE, Load("UTF-16"), "bare utf-16 label should default to little endian")
	require.Equal(t, UTF16LE, Load("utf-16le"), "utf-16le label resolves to UTF16LE")
	require.Equal(t, UTF16BE, Load("utf-16be"), "utf-16be label resolves to UTF16BE")
	require.Equal(t, UTF8, Load("utf-8"), "utf-8 label resolves to UTF8")
}

func TestISO88591(t *testing.T) {
	e := Load("iso-8859-1")
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		if err != nil {
			t.Logf("Failed to decode '%#x': %s", v, err)
		} else {
			t.Logf("%#x -> '%s'", v, s)
		}

		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v1, err := enc.String(s)
		if err != nil {
			t.Logf("Failed to encode '%s': %s", s, err)
		} else {
			t.Logf("'%s' -> '%#x'", s, v1)
		}
	}
}
