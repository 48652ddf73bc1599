package token

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// Unescape expands the predefined entities (&lt; &gt; &amp; &apos;
// &quot;) and decimal/hexadecimal character references in b. When b
// contains no '&' it is returned as-is.
func Unescape(b []byte) ([]byte, error) {
	i := bytes.IndexByte(b, '&')
	if i < 0 {
		return b, nil
	}

	out := make([]byte, 0, len(b))
	for {
		out = append(out, b[:i]...)
		b = b[i:]
		end := bytes.IndexByte(b, ';')
		if end < 0 {
			return nil, ErrSemicolonRequired
		}
		rep, err := resolveEntity(b[1:end])
		if err != nil {
			return nil, err
		}
		out = append(out, rep...)
		b = b[end+1:]
		i = bytes.IndexByte(b, '&')
		if i < 0 {
			return append(out, b...), nil
		}
	}
}

func resolveEntity(name []byte) ([]byte, error) {
	if len(name) > 1 && name[0] == '#' {
		return resolveCharRef(name[1:])
	}
	switch string(name) {
	case "lt":
		return []byte{'<'}, nil
	case "gt":
		return []byte{'>'}, nil
	case "amp":
		return []byte{'&'}, nil
	case "apos":
		return []byte{'\''}, nil
	case "quot":
		return []byte{'"'}, nil
	}
	return nil, ErrEntityNotFound
}

func resolveCharRef(ref []byte) ([]byte, error) {
	base := 10
	if len(ref) > 0 && (ref[0] == 'x' || ref[0] == 'X') {
		base = 16
		ref = ref[1:]
	}
	n, err := strconv.ParseUint(string(ref), base, 32)
	if err != nil {
		return nil, ErrInvalidCharRef
	}
	r := rune(n)
	if r == 0 || !utf8.ValidRune(r) {
		return nil, ErrInvalidCharRef
	}
	var buf [utf8.UTFMax]byte
	return buf[:utf8.EncodeRune(buf[:], r)], nil
}
