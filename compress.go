/*
 * compress.go, part of nanopdb.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * nanopdb is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package nanopdb

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//Why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdCloser struct {
	*zstd.Decoder
}

//Close releases the decoder. It can not be used after this call
func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//compression names the formats that decompress recognizes.
type compression string

const (
	compNone compression = "none"
	compGzip compression = "gzip"
	compZstd compression = "zstd"
)

//sniff looks at the first bytes of the stream to decide how it is compressed.
//The returned reader still contains those bytes.
func sniff(r io.Reader) (*bufio.Reader, compression) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic)) //a short read just means a short, uncompressed, file.
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return br, compGzip
	case bytes.HasPrefix(head, zstdMagic):
		return br, compZstd
	}
	return br, compNone
}

//decompress wraps r in the decompressor matching its content, if any. Closing the
//returned ReadCloser closes the decompressor, not r.
func decompress(r io.Reader) (io.ReadCloser, compression, error) {
	br, comp := sniff(r)
	switch comp {
	case compGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, comp, err
		}
		return zr, comp, nil
	case compZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, comp, err
		}
		return zstdCloser{zr}, comp, nil
	}
	return io.NopCloser(br), comp, nil
}
