/*
 * parser.go, part of nanopdb.
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
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	mmap "github.com/edsrzf/mmap-go"
	"go.uber.org/zap"
)

const (
	//DefaultBaseURL is where Fetch downloads structures from.
	DefaultBaseURL = "https://files.rcsb.org/download/"
	//DefaultTimeout bounds each Fetch call, including reading the body.
	DefaultTimeout = 30 * time.Second
	//DefaultConcurrency is the number of simultaneous downloads in FetchAll.
	DefaultConcurrency = 4
)

//Parser reads PDB files, either downloaded from the RCSB or from disk.
//A Parser is not changed after NewParser returns, so it can be shared
//between goroutines.
type Parser struct {
	client      *http.Client
	baseURL     string
	timeout     time.Duration
	concurrency int
	log         *zap.Logger
}

//Option configures a Parser.
type Option func(*Parser)

//WithHTTPClient sets the client used by Fetch.
func WithHTTPClient(c *http.Client) Option {
	return func(P *Parser) {
		if c != nil {
			P.client = c
		}
	}
}

//WithBaseURL sets the URL prefix Fetch downloads from. The file name,
//<id>.pdb, is appended to it, so it should end in "/".
func WithBaseURL(url string) Option {
	return func(P *Parser) {
		if url != "" {
			P.baseURL = url
		}
	}
}

//WithTimeout sets the time limit for each Fetch. 0 means no limit other than
//the one in the context.
func WithTimeout(d time.Duration) Option {
	return func(P *Parser) {
		if d >= 0 {
			P.timeout = d
		}
	}
}

//WithConcurrency sets how many structures FetchAll downloads at the same time.
func WithConcurrency(n int) Option {
	return func(P *Parser) {
		if n > 0 {
			P.concurrency = n
		}
	}
}

//WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *zap.Logger) Option {
	return func(P *Parser) {
		if l != nil {
			P.log = l
		}
	}
}

//NewParser returns a Parser. With no options it downloads from the RCSB
//with DefaultTimeout and logs nothing.
func NewParser(opts ...Option) *Parser {
	P := &Parser{
		client:      http.DefaultClient,
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
		log:         zap.NewNop(),
	}
	for _, o := range opts {
		o(P)
	}
	P.log = P.log.Named("nanopdb")
	return P
}

//Read reads a PDB file from r. gzip and zstd compressed input is
//decompressed on the fly.
func (P *Parser) Read(r io.Reader) (*Structure, error) {
	rc, comp, err := decompress(r)
	if err != nil {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%s stream: %w", comp, err), deco: []string{"Read"}}
	}
	defer rc.Close()
	if comp != compNone {
		P.log.Debug("decompressing input", zap.String("compression", string(comp)))
	}
	s, err := readPDB(rc, P.log)
	return s, errDecorate(err, "Read")
}

//Parse reads the PDB file at path. Regular files are memory-mapped.
func (P *Parser) Parse(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("nanopdb: %s is a directory", path)
	}
	//Empty files can't be mapped, and special files may report a 0 size
	//even if they have content, so we just stream those.
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		s, err := P.Read(f)
		return s, errDecorate(err, "Parse")
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("nanopdb: mapping %s: %w", path, err)
	}
	defer m.Unmap()
	P.log.Debug("parsing file", zap.String("path", path), zap.Int64("bytes", fi.Size()))
	s, err := P.Read(bytes.NewReader(m))
	return s, errDecorate(err, "Parse")
}
