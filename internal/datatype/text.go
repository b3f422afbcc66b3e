package datatype

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Textual plumbing shared by the concrete types. The escaped dialect stops an
// unquoted value at tab or newline so values embed safely in a tab-separated
// dump; the quoted dialect delimits with single quotes and escapes the quote
// itself.

func decodeErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}

// isTokenDelim marks the bytes that end an unquoted token: field and row
// separators plus the closers of composite literals.
func isTokenDelim(c byte) bool {
	switch c {
	case '\t', '\n', ',', ']', ')', ' ':
		return true
	}
	return false
}

// readToken consumes bytes up to (not including) the next delimiter or EOF.
// An empty token is a decode error.
func readToken(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if isTokenDelim(c) {
			if err := r.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteByte(c)
	}
	if sb.Len() == 0 {
		return "", decodeErrf("expected literal, found none")
	}
	return sb.String(), nil
}

func writeEscaped(w io.Writer, s string, escapeQuote bool) error {
	bw, flush := ensureByteWriter(w)
	for i := 0; i < len(s); i++ {
		c := s[i]
		var esc byte
		switch c {
		case 0:
			esc = '0'
		case '\b':
			esc = 'b'
		case '\f':
			esc = 'f'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		case '\\':
			esc = '\\'
		case '\'':
			if escapeQuote {
				esc = '\''
			}
		}
		if esc != 0 {
			if err := bw.WriteByte('\\'); err != nil {
				return err
			}
			c = esc
		}
		if err := bw.WriteByte(c); err != nil {
			return err
		}
	}
	return flush()
}

func unescapeByte(c byte) (byte, bool) {
	switch c {
	case '0':
		return 0, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	}
	return 0, false
}

// readEscaped reads an escaped-dialect string, stopping before an unescaped
// tab or newline, or at EOF.
func readEscaped(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if c == '\t' || c == '\n' {
			if err := r.UnreadByte(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		e, err := r.ReadByte()
		if err != nil {
			return "", decodeErrf("dangling escape at end of input")
		}
		u, ok := unescapeByte(e)
		if !ok {
			return "", decodeErrf("invalid escape sequence \\%c", e)
		}
		sb.WriteByte(u)
	}
}

func writeQuoted(w io.Writer, s string) error {
	if _, err := io.WriteString(w, "'"); err != nil {
		return err
	}
	if err := writeEscaped(w, s, true); err != nil {
		return err
	}
	_, err := io.WriteString(w, "'")
	return err
}

// readQuoted reads a single-quoted string literal including both quotes.
func readQuoted(r *bufio.Reader) (string, error) {
	c, err := r.ReadByte()
	if err != nil {
		return "", decodeErrf("expected opening quote: %v", err)
	}
	if c != '\'' {
		return "", decodeErrf("expected opening quote, found %q", c)
	}
	var sb strings.Builder
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", decodeErrf("unterminated quoted literal")
		}
		switch c {
		case '\'':
			return sb.String(), nil
		case '\\':
			e, err := r.ReadByte()
			if err != nil {
				return "", decodeErrf("dangling escape in quoted literal")
			}
			u, ok := unescapeByte(e)
			if !ok {
				return "", decodeErrf("invalid escape sequence \\%c", e)
			}
			sb.WriteByte(u)
		default:
			sb.WriteByte(c)
		}
	}
}

// tryReadToken consumes tok if the stream starts with it, without consuming
// anything otherwise.
func tryReadToken(r *bufio.Reader, tok string) (bool, error) {
	buf, err := r.Peek(len(tok))
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	if len(buf) < len(tok) || string(buf) != tok {
		return false, nil
	}
	if _, err := r.Discard(len(tok)); err != nil {
		return false, err
	}
	return true, nil
}

// expectByte consumes one byte and checks it.
func expectByte(r *bufio.Reader, want byte) error {
	c, err := r.ReadByte()
	if err != nil {
		return decodeErrf("expected %q: %v", want, err)
	}
	if c != want {
		return decodeErrf("expected %q, found %q", want, c)
	}
	return nil
}

// skipSpaces consumes any run of space bytes.
func skipSpaces(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if c != ' ' {
			return r.UnreadByte()
		}
	}
}

// ensureByteWriter adapts w to a byte-at-a-time writer without double
// buffering when w already supports it.
func ensureByteWriter(w io.Writer) (io.ByteWriter, func() error) {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw, func() error { return nil }
	}
	bw := bufio.NewWriter(w)
	return bw, bw.Flush
}
