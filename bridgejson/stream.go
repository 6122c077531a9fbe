/*
 * stream.go, part of chembridge.
 *
 * Copyright 2025 Andres Villar <avillar{at}pmDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package bridgejson

import (
	"encoding/json"
	"io"

	"github.com/klauspost/compress/zstd"
)

//Writer streams JSON-encoded snapshots, one per line, through a
//zstd-compressed writer.
type Writer struct {
	h    *zstd.Encoder
	enc  *json.Encoder
	open bool
}

//NewWriter wraps w in a zstd stream of snapshots. The optional argument
//is the zstd compression level; only the first value is read. The default
//of 3 is the zstd default.
func NewWriter(w io.Writer, compressionLevel ...int) (*Writer, error) {
	level := 3
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	h, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	if err != nil {
		return nil, Error{err.Error(), []string{"NewWriter"}}
	}
	return &Writer{h: h, enc: json.NewEncoder(h), open: true}, nil
}

//WNext writes the next snapshot to the stream.
func (W *Writer) WNext(J *Frame) error {
	if !W.open {
		return Error{"writer is closed", []string{"WNext"}}
	}
	if J == nil {
		return Error{"nil snapshot", []string{"WNext"}}
	}
	if err := W.enc.Encode(J); err != nil {
		return Error{err.Error(), []string{"WNext"}}
	}
	return nil
}

//Close flushes and closes the compressed stream. It does not close the
//underlying writer, which the caller owns.
func (W *Writer) Close() error {
	if W == nil || !W.open {
		return nil
	}
	W.open = false
	if err := W.h.Close(); err != nil {
		return Error{err.Error(), []string{"Close"}}
	}
	return nil
}

//Reader reads back a stream produced by Writer.
type Reader struct {
	h   *zstd.Decoder
	dec *json.Decoder
}

//NewReader wraps a reader positioned at the start of a snapshot stream.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := zstd.NewReader(r)
	if err != nil {
		return nil, Error{err.Error(), []string{"NewReader"}}
	}
	return &Reader{h: h, dec: json.NewDecoder(h)}, nil
}

//Next returns the next snapshot in the stream, or io.EOF after the last
//one.
func (R *Reader) Next() (*Frame, error) {
	J := new(Frame)
	err := R.dec.Decode(J)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, Error{err.Error(), []string{"Next"}}
	}
	return J, nil
}

//Close releases the decoder.
func (R *Reader) Close() {
	if R == nil || R.h == nil {
		return
	}
	R.h.Close()
}
