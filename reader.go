package xmldoc

import (
	"io"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	undecodedSize = 4096
	// No supported encoding needs more than 32 bytes for one character.
	carrySize = 32
	// A single byte of a legacy code page can expand to at most three
	// bytes of UTF-8, so this is the worst case for a full raw region.
	decodedSize = 3 * undecodedSize
)

// decodeReader converts a raw byte stream into decoded UTF-8 text on
// demand. With no decoder configured it hands the raw bytes through
// untouched. The active decoder can be swapped at any time without
// discarding buffered undecoded bytes, which is what makes the
// declaration-driven encoding switch lossless.
type decodeReader struct {
	in           io.Reader
	decoder      *enc.Decoder
	undecoded    [undecodedSize]byte
	undecodedPos int
	undecodedCap int
	carry        [carrySize]byte
	decoded      [decodedSize]byte
	decodedPos   int
	decodedCap   int
	done         bool
}

// If e is nil, don't decode.
func newDecodeReader(in io.Reader, e enc.Encoding) *decodeReader {
	d := &decodeReader{in: in}
	if e != nil {
		d.decoder = e.NewDecoder()
	}
	return d
}

// SetEncoding replaces the active decoder, or removes it when e is
// nil. Undecoded bytes already buffered are kept, so no input is lost
// when the switch happens after sniffing but before the declared
// encoding is known.
func (d *decodeReader) SetEncoding(e enc.Encoding) {
	if e == nil {
		d.decoder = nil
	} else {
		d.decoder = e.NewDecoder()
	}
	d.done = false
}

// FillBuf returns the current window of decoded text, pulling and
// decoding more raw input when the window is empty. An empty window
// with a nil error means the input is exhausted.
func (d *decodeReader) FillBuf() ([]byte, error) {
	if d.decoder != nil {
		return d.fillBufDecode()
	}
	return d.fillBufRaw()
}

// Consume discards n bytes from the front of the active window,
// clamped to what the window holds.
func (d *decodeReader) Consume(n int) {
	if d.decoder != nil {
		d.decodedPos = min(d.decodedPos+n, d.decodedCap)
	} else {
		d.undecodedPos = min(d.undecodedPos+n, d.undecodedCap)
	}
}

func (d *decodeReader) fillBufDecode() ([]byte, error) {
	// Unlike decoders that buffer a dangling partial character
	// internally, x/text transformers report ErrShortSrc and consume
	// nothing, so keep refilling until something comes out.
	for d.decodedPos >= d.decodedCap {
		remaining := d.undecodedCap - d.undecodedPos
		if d.done && remaining == 0 {
			return nil, nil
		}
		if !d.done && remaining <= carrySize {
			// Move the undecoded tail to the front so a character split
			// across a raw read boundary is never handed to the decoder
			// truncated.
			copy(d.carry[:remaining], d.undecoded[d.undecodedPos:d.undecodedCap])
			copy(d.undecoded[:remaining], d.carry[:remaining])
			d.undecodedPos = 0
			d.undecodedCap = remaining

			n, err := d.in.Read(d.undecoded[remaining:])
			if err != nil && err != io.EOF {
				return nil, err
			}
			if n == 0 || err == io.EOF {
				d.done = true
			}
			d.undecodedCap += n
		}

		nDst, nSrc, err := d.decoder.Transform(
			d.decoded[:],
			d.undecoded[d.undecodedPos:d.undecodedCap],
			d.done,
		)
		if err != nil && err != transform.ErrShortDst && err != transform.ErrShortSrc {
			return nil, err
		}
		d.undecodedPos += nSrc
		d.decodedPos = 0
		d.decodedCap = nDst
	}
	return d.decoded[d.decodedPos:d.decodedCap], nil
}

func (d *decodeReader) fillBufRaw() ([]byte, error) {
	if d.undecodedPos >= d.undecodedCap {
		n, err := d.in.Read(d.undecoded[:])
		if err != nil && err != io.EOF {
			return nil, err
		}
		d.undecodedPos = 0
		d.undecodedCap = n
	}
	return d.undecoded[d.undecodedPos:d.undecodedCap], nil
}

// peekRaw returns a window of at least n raw bytes when the source can
// still provide them, consuming nothing. Only meaningful before any
// decoding has happened; the sniffing stage uses it so that encoding
// detection does not depend on how the source chunks its reads.
func (d *decodeReader) peekRaw(n int) ([]byte, error) {
	for d.undecodedCap-d.undecodedPos < n && !d.done {
		nn, err := d.in.Read(d.undecoded[d.undecodedCap:])
		if err != nil && err != io.EOF {
			return nil, err
		}
		if nn == 0 || err == io.EOF {
			d.done = true
		}
		d.undecodedCap += nn
	}
	return d.undecoded[d.undecodedPos:d.undecodedCap], nil
}
