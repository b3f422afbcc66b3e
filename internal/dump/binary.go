// Package dump reads and writes self-describing column dumps: a binary
// format for storage and transfer, and a tab-separated text format for
// interchange.
package dump

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hashicorp/go-msgpack/codec"

	"github.com/trinhvc/colstore/internal/bx"
	"github.com/trinhvc/colstore/internal/column"
	"github.com/trinhvc/colstore/internal/datatype"
	"github.com/trinhvc/colstore/internal/iobuf"
	"github.com/trinhvc/colstore/internal/sparseindex"
)

var (
	ErrBadMagic   = errors.New("dump: bad magic")
	ErrBadVersion = errors.New("dump: unsupported version")
	ErrBadHeader  = errors.New("dump: bad header")
	ErrBadCRC     = errors.New("dump: bad crc")
	ErrTruncated  = errors.New("dump: truncated payload")
)

const (
	magic      = "CDMP"
	versionU16 = 1

	// Headers are small; anything beyond this is a corrupt length field.
	maxHeaderLen = 1 << 20

	// maxPayloadLen bounds the payload size a header may declare before it
	// is allocated and read.
	maxPayloadLen = 1 << 30
)

// Header describes the payload that follows it. It is msgpack-encoded so
// external tooling can read dump metadata without the column codecs.
type Header struct {
	Name       string `codec:"name"`
	Type       string `codec:"type"`
	Rows       int    `codec:"rows"`
	PayloadLen uint64 `codec:"payload_len"`
	CRC        uint32 `codec:"crc"`
}

// WriteColumn writes one column as magic | version | header | payload,
// where payload is the type's bulk binary encoding.
func WriteColumn(w io.Writer, name string, dt datatype.DataType, col column.Column) error {
	_, err := writeColumn(w, name, dt, col, 0)
	return err
}

// WriteColumnIndexed additionally builds a sparse positional index with one
// mark every granularity rows. Offsets are relative to the payload start.
func WriteColumnIndexed(w io.Writer, name string, dt datatype.DataType, col column.Column, granularity int) (sparseindex.Index, error) {
	return writeColumn(w, name, dt, col, granularity)
}

func writeColumn(w io.Writer, name string, dt datatype.DataType, col column.Column, granularity int) (sparseindex.Index, error) {
	var payload bytes.Buffer
	cw := iobuf.NewCountingWriter(&payload)

	var ix sparseindex.Index
	var cb datatype.WriteCallback
	var builder *sparseindex.Builder
	if granularity > 0 {
		builder = sparseindex.NewBuilder(granularity, cw)
		cb = builder.Callback()
	}
	if err := dt.SerializeBinaryBulk(col, cw, cb); err != nil {
		return ix, err
	}
	if builder != nil {
		ix = builder.Index()
	}

	hdr := Header{
		Name:       name,
		Type:       dt.Name(),
		Rows:       col.Len(),
		PayloadLen: uint64(payload.Len()),
		CRC:        crc32.ChecksumIEEE(payload.Bytes()),
	}
	var hdrBytes []byte
	enc := codec.NewEncoderBytes(&hdrBytes, new(codec.MsgpackHandle))
	if err := enc.Encode(hdr); err != nil {
		return ix, fmt.Errorf("dump: encoding header: %w", err)
	}

	if _, err := io.WriteString(w, magic); err != nil {
		return ix, err
	}
	var fixed [6]byte
	bx.PutU16(fixed[0:2], versionU16)
	bx.PutU32(fixed[2:6], uint32(len(hdrBytes)))
	if _, err := w.Write(fixed[:]); err != nil {
		return ix, err
	}
	if _, err := w.Write(hdrBytes); err != nil {
		return ix, err
	}
	_, err := w.Write(payload.Bytes())
	return ix, err
}

// ReadColumn reads one column dump, verifying the crc and the declared row
// count, and returns the column name, its resolved type and the values.
func ReadColumn(r io.Reader) (string, datatype.DataType, column.Column, error) {
	var head [10]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return "", nil, nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if string(head[0:4]) != magic {
		return "", nil, nil, ErrBadMagic
	}
	if bx.U16(head[4:6]) != versionU16 {
		return "", nil, nil, ErrBadVersion
	}
	hdrLen := bx.U32(head[6:10])
	if hdrLen == 0 || hdrLen > maxHeaderLen {
		return "", nil, nil, ErrBadHeader
	}

	hdrBytes := make([]byte, hdrLen)
	if _, err := io.ReadFull(r, hdrBytes); err != nil {
		return "", nil, nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	var hdr Header
	dec := codec.NewDecoderBytes(hdrBytes, new(codec.MsgpackHandle))
	if err := dec.Decode(&hdr); err != nil {
		return "", nil, nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	dt, err := datatype.Resolve(hdr.Type)
	if err != nil {
		return "", nil, nil, err
	}

	if hdr.PayloadLen > maxPayloadLen {
		return "", nil, nil, fmt.Errorf("%w: declared payload of %d bytes", ErrBadHeader, hdr.PayloadLen)
	}
	payload := make([]byte, hdr.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", nil, nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if crc32.ChecksumIEEE(payload) != hdr.CRC {
		return "", nil, nil, ErrBadCRC
	}

	col := dt.CreateColumn()
	br := bufio.NewReader(bytes.NewReader(payload))
	n, err := dt.DeserializeBinaryBulk(br, col, hdr.Rows)
	if err != nil {
		return "", nil, nil, err
	}
	if n != hdr.Rows {
		return "", nil, nil, fmt.Errorf("%w: header declares %d rows, payload holds %d", ErrTruncated, hdr.Rows, n)
	}
	return hdr.Name, dt, col, nil
}
