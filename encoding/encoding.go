// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from xmldoc
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// The UTF family is compared by identity in the parser, so the same
// value must be returned for every label that maps to it.
var (
	UTF8    = unicode.UTF8
	UTF16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	UTF16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// Load resolves an encoding label as found in an XML declaration (or
// given by the caller) to an encoding. Returns nil for labels we do
// not know about.
//
// The bare "utf-16" label resolves to the little-endian flavor. That
// matches the WHATWG label table, where "utf-16" is an alias for
// UTF-16LE; callers that sniffed a big-endian stream must account for
// this themselves.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return UTF8
	case "utf16", "utf-16", "utf16le", "utf-16le":
		return UTF16LE
	case "utf16be", "utf-16be", "unicodefffe":
		return UTF16BE
	case "euc-jp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "jis", "iso-2022-jp":
		return japanese.ISO2022JP
	case "big5":
		return traditionalchinese.Big5
	case "euc-kr":
		return korean.EUCKR
	case "hz-gb2312":
		return simplifiedchinese.HZGB2312
	case "gbk":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "cp437":
		return charmap.CodePage437
	case "cp866":
		return charmap.CodePage866
	case "iso-8859-10":
		return charmap.ISO8859_10
	case "iso-8859-13":
		return charmap.ISO8859_13
	case "iso-8859-14":
		return charmap.ISO8859_14
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "iso-8859-16":
		return charmap.ISO8859_16
	case "iso-8859-2":
		return charmap.ISO8859_2
	case "iso-8859-3":
		return charmap.ISO8859_3
	case "iso-8859-4":
		return charmap.ISO8859_4
	case "iso-8859-5":
		return charmap.ISO8859_5
	case "iso-8859-6":
		return charmap.ISO8859_6
	case "iso-8859-7":
		return charmap.ISO8859_7
	case "iso-8859-8":
		return charmap.ISO8859_8
	case "koi8r", "koi8-r":
		return charmap.KOI8R
	case "koi8u", "koi8-u":
		return charmap.KOI8U
	case "macintosh":
		return charmap.Macintosh
	case "macintoshcyrillic", "x-mac-cyrillic":
		return charmap.MacintoshCyrillic
	case "windows1250", "windows-1250":
		return charmap.Windows1250
	case "windows1251", "windows-1251":
		return charmap.Windows1251
	// Per the WHATWG label table, latin1 labels map to windows-1252.
	case "iso-8859-1", "latin1", "windows1252", "windows-1252":
		return charmap.Windows1252
	case "windows1253", "windows-1253":
		return charmap.Windows1253
	case "windows1254", "windows-1254":
		return charmap.Windows1254
	case "windows1255", "windows-1255":
		return charmap.Windows1255
	case "windows1256", "windows-1256":
		return charmap.Windows1256
	case "windows1257", "windows-1257":
		return charmap.Windows1257
	case "windows1258", "windows-1258":
		return charmap.Windows1258
	case "windows874", "windows-874":
		return charmap.Windows874
	case "xuserdefined", "x-user-defined":
		return charmap.XUserDefined
	}
	return nil
}
