package formatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// literals per output row
	BytesPerRow = 20

	literalLen = len("0xFF, ")
	hexDigits  = "0123456789ABCDEF"
)

// ParseError reports a malformed literal in a list produced by Format.
type ParseError struct {
	Index int // 1-based token position
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("literal %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errPrefix = errors.New("missing 0x prefix")
	errWidth  = errors.New("want exactly two hex digits")
)

// Append appends the literal list for data to dst. Each byte becomes an
// uppercase 0xXX literal followed by ", ", except every BytesPerRow-th
// literal which is followed by ",\n". The separator after the last byte is
// always written.
func Append(dst, data []byte) []byte {
	for i, b := range data {
		dst = append(dst, '0', 'x', hexDigits[b>>4], hexDigits[b&0x0F])
		if (i+1)%BytesPerRow == 0 {
			dst = append(dst, ",\n"...)
		} else {
			dst = append(dst, ", "...)
		}
	}
	return dst
}

// Format returns the literal list for data. Empty input yields "".
func Format(data []byte) string {
	return string(Append(make([]byte, 0, len(data)*literalLen), data))
}

// Write streams the literal list for data to w one row at a time.
func Write(w io.Writer, data []byte) error {
	bw := bufio.NewWriter(w)
	row := make([]byte, 0, BytesPerRow*literalLen)
	for start := 0; start < len(data); start += BytesPerRow {
		end := min(start+BytesPerRow, len(data))
		row = Append(row[:0], data[start:end])
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse turns a literal list back into bytes. Empty tokens, such as the one
// after the trailing separator, are skipped.
func Parse(s string) ([]byte, error) {
	tokens := strings.Split(s, ",")
	data := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if !strings.HasPrefix(tok, "0x") && !strings.HasPrefix(tok, "0X") {
			return nil, &ParseError{Index: i + 1, Token: tok, Err: errPrefix}
		}
		if len(tok) != 4 {
			return nil, &ParseError{Index: i + 1, Token: tok, Err: errWidth}
		}
		b, err := strconv.ParseUint(tok[2:], 16, 8)
		if err != nil {
			return nil, &ParseError{Index: i + 1, Token: tok, Err: err}
		}
		data = append(data, uint8(b))
	}
	return data, nil
}
