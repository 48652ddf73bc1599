package xmldoc

import (
	"bytes"

	enc "golang.org/x/text/encoding"

	"github.com/lestrrat-go/xmldoc/encoding"
	"github.com/lestrrat-go/xmldoc/internal/debug"
)

var (
	patXMLDecl   = []byte{0x3C, 0x3F} // "<?", plain UTF-8
	patUTF16BE2B = []byte{0xFE, 0xFF}
	patUTF16LE2B = []byte{0xFF, 0xFE}
	patUTF8      = []byte{0xEF, 0xBB, 0xBF}
	patUTF16BE4B = []byte{0x00, 0x3C, 0x00, 0x3F} // "<?" with null high bytes
	patUTF16LE4B = []byte{0x3C, 0x00, 0x3F, 0x00}
)

// sniffEncoding inspects the leading bytes of the raw stream, returns
// the encoding to start decoding with, and consumes the byte order
// mark when one is present. nil means "treat as UTF-8 until the XML
// declaration says otherwise".
func sniffEncoding(dr *decodeReader) (enc.Encoding, error) {
	b, err := dr.peekRaw(4)
	if err != nil {
		return nil, err
	}
	if debug.Enabled {
		debug.Printf("sniffing %#v", b)
	}
	switch {
	case bytes.HasPrefix(b, patXMLDecl):
		return nil, nil
	case bytes.HasPrefix(b, patUTF16BE2B):
		dr.Consume(2)
		return encoding.UTF16BE, nil
	case bytes.HasPrefix(b, patUTF16LE2B):
		dr.Consume(2)
		return encoding.UTF16LE, nil
	case bytes.HasPrefix(b, patUTF8):
		dr.Consume(3)
		return nil, nil
	case bytes.HasPrefix(b, patUTF16BE4B):
		return encoding.UTF16BE, nil
	case bytes.HasPrefix(b, patUTF16LE4B):
		return encoding.UTF16LE, nil
	}
	// Try decoding it with UTF-8
	return nil, nil
}
