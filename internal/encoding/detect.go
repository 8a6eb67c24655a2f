package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

// Charset names reported by Decode.
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "windows-1252"
	ISO8859_9   = "ISO-8859-9"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode sniffs the charset of a bank export and returns a UTF-8 reader over
// it together with the charset it decided on. A byte-order mark wins, then
// valid UTF-8, then chardet's best guess. Anything else is read as
// Windows-1252, which is what Portuguese banks emit.
func Decode(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	buf, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, "", fmt.Errorf("sniffing charset: %w", err)
	}

	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, UTF8, nil
	case bytes.HasPrefix(buf, bomUTF16LE):
		return decodeWith(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)), UTF16LE, nil
	case bytes.HasPrefix(buf, bomUTF16BE):
		return decodeWith(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM)), UTF16BE, nil
	case utf8.Valid(buf):
		return br, UTF8, nil
	}

	if guess, err := chardet.NewTextDetector().DetectBest(buf); err == nil {
		switch guess.Charset {
		case UTF8:
			return br, UTF8, nil
		case "ISO-8859-1", Windows1252:
			return decodeWith(br, charmap.Windows1252), Windows1252, nil
		case ISO8859_9:
			return decodeWith(br, charmap.ISO8859_9), ISO8859_9, nil
		}
	}

	return decodeWith(br, charmap.Windows1252), Windows1252, nil
}

func decodeWith(r io.Reader, e encoding.Encoding) io.Reader {
	return transform.NewReader(r, e.NewDecoder())
}
