/*
 * fetch_test.go, part of nanopdb.
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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

//pdbServer serves the test fixture as 1zhy.pdb, a gzipped copy as 2zhy.pdb,
//and a file without HEADER as 3abc.pdb. Everything else is a 404.
func pdbServer(Te *testing.T, hits *atomic.Int32) *httptest.Server {
	Te.Helper()
	plain, err := os.ReadFile(fixture)
	if err != nil {
		Te.Fatal(err)
	}
	gz := gzipped(Te, plain)
	noheader := []byte("ATOM      1  N   MET A   1      11.104   6.134  -6.504  1.00 30.12           N\n")
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		switch r.URL.Path {
		case "/download/1zhy.pdb":
			w.Write(plain)
		case "/download/2zhy.pdb":
			w.Write(gz)
		case "/download/3abc.pdb":
			w.Write(noheader)
		case "/download/9slo.pdb":
			time.Sleep(200 * time.Millisecond)
			w.Write(plain)
		default:
			http.NotFound(w, r)
		}
	}))
}

func testParser(srv *httptest.Server, opts ...Option) *Parser {
	opts = append([]Option{WithBaseURL(srv.URL + "/download/"), WithHTTPClient(srv.Client())}, opts...)
	return NewParser(opts...)
}

func TestFetch(Te *testing.T) {
	srv := pdbServer(Te, nil)
	defer srv.Close()
	P := testParser(srv)
	//upper case IDs are lowered for the URL.
	s, err := P.Fetch(context.Background(), "1ZHY")
	if err != nil {
		Te.Fatal(err)
	}
	sameStructure(Te, s, readFixture(Te))
	c, err := s.Chain(0)
	if err != nil {
		Te.Fatal(err)
	}
	r, err := c.Residue(0)
	if err != nil {
		Te.Fatal(err)
	}
	if len(r.Atoms()) == 0 {
		Te.Error("first residue has no atoms")
	}

	s, err = P.Fetch(context.Background(), "2zhy")
	if err != nil {
		Te.Fatal(err)
	}
	if s.NAtoms() != 16 {
		Te.Errorf("gzipped download: got %d atoms, want 16", s.NAtoms())
	}

	s, err = P.Fetch(context.Background(), "3abc")
	if err != nil {
		Te.Fatal(err)
	}
	if s.ID() != "3ABC" {
		Te.Errorf("ID should come from the request when there is no HEADER, got %q", s.ID())
	}
}

func TestFetchNotFound(Te *testing.T) {
	srv := pdbServer(Te, nil)
	defer srv.Close()
	_, err := testParser(srv).Fetch(context.Background(), "4xyz")
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		Te.Fatalf("expected a *FetchError, got %v", err)
	}
	if ferr.StatusCode != http.StatusNotFound || ferr.ID != "4xyz" || !strings.HasSuffix(ferr.URL, "/download/4xyz.pdb") {
		Te.Errorf("wrong error fields: %+v", ferr)
	}
	if !strings.Contains(err.Error(), "404 Not Found") {
		Te.Errorf("unexpected message: %s", err)
	}
}

func TestFetchInvalidID(Te *testing.T) {
	var hits atomic.Int32
	srv := pdbServer(Te, &hits)
	defer srv.Close()
	P := testParser(srv)
	for _, id := range []string{"", "zhy", "0zhy", "1zhy2", "1z/y", "../1"} {
		if _, err := P.Fetch(context.Background(), id); !errors.Is(err, ErrInvalidID) {
			Te.Errorf("Fetch(%q): expected ErrInvalidID, got %v", id, err)
		}
	}
	if _, err := P.FetchAll(context.Background(), "1zhy", "bad"); !errors.Is(err, ErrInvalidID) {
		Te.Errorf("FetchAll: expected ErrInvalidID, got %v", err)
	}
	if n := hits.Load(); n != 0 {
		Te.Errorf("%d requests were made for invalid IDs", n)
	}
}

func TestFetchTimeout(Te *testing.T) {
	srv := pdbServer(Te, nil)
	defer srv.Close()
	_, err := testParser(srv, WithTimeout(20*time.Millisecond)).Fetch(context.Background(), "9slo")
	var ferr *FetchError
	if !errors.As(err, &ferr) || !errors.Is(err, context.DeadlineExceeded) {
		Te.Errorf("expected a FetchError wrapping context.DeadlineExceeded, got %v", err)
	}
}

func TestFetchAll(Te *testing.T) {
	var hits atomic.Int32
	srv := pdbServer(Te, &hits)
	defer srv.Close()
	P := testParser(srv, WithConcurrency(2))
	ids := []string{"3abc", "1zhy", "2zhy"}
	structs, err := P.FetchAll(context.Background(), ids...)
	if err != nil {
		Te.Fatal(err)
	}
	for i, want := range []string{"3ABC", "1ZHY", "1ZHY"} {
		if structs[i].ID() != want {
			Te.Errorf("structure %d: got %s, want %s", i, structs[i].ID(), want)
		}
	}
	if hits.Load() != 3 {
		Te.Errorf("expected 3 requests, got %d", hits.Load())
	}
	_, err = P.FetchAll(context.Background(), "1zhy", "4xyz")
	var ferr *FetchError
	if !errors.As(err, &ferr) || ferr.StatusCode != http.StatusNotFound {
		Te.Errorf("expected the 404 from 4xyz, got %v", err)
	}
}

func TestURL(Te *testing.T) {
	u, err := NewParser().URL("1ZHY")
	if err != nil {
		Te.Fatal(err)
	}
	if u != "https://files.rcsb.org/download/1zhy.pdb" {
		Te.Errorf("got %s", u)
	}
}

func TestFetchErrorID(Te *testing.T) {
	srv := pdbServer(Te, nil)
	defer srv.Close()
	_, err := testParser(srv).Fetch(context.Background(), " 4XYZ ")
	var ferr *FetchError
	if !errors.As(err, &ferr) {
		Te.Fatalf("expected a *FetchError, got %v", err)
	}
	if ferr.ID != "4xyz" || !strings.HasSuffix(ferr.URL, "/"+ferr.ID+".pdb") {
		Te.Errorf("ID and URL don't agree: %q %q", ferr.ID, ferr.URL)
	}
}

//TestFetchAllCancel checks that the first failed download cancels the
//ones still running.
func TestFetchAllCancel(Te *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/download/5hng.pdb":
			close(started)
			<-r.Context().Done()
			close(cancelled)
		default:
			//fail only once the other download is under way.
			select {
			case <-started:
			case <-time.After(5 * time.Second):
			}
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	P := testParser(srv, WithConcurrency(2), WithTimeout(20*time.Second))
	begin := time.Now()
	_, err := P.FetchAll(context.Background(), "5hng", "4xyz")
	var ferr *FetchError
	if !errors.As(err, &ferr) || ferr.StatusCode != http.StatusNotFound || ferr.ID != "4xyz" {
		Te.Fatalf("expected the 404 from 4xyz, got %v", err)
	}
	if elapsed := time.Since(begin); elapsed > 10*time.Second {
		Te.Errorf("FetchAll took %v, the hanging download was not cancelled", elapsed)
	}
	select {
	case <-cancelled:
	case <-time.After(5 * time.Second):
		Te.Error("the hanging request never saw the cancellation")
	}
}

func TestFetchAllLimit(Te *testing.T) {
	plain, err := os.ReadFile(fixture)
	if err != nil {
		Te.Fatal(err)
	}
	var inflight, peak, hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		n := inflight.Add(1)
		for {
			m := peak.Load()
			if n <= m || peak.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		inflight.Add(-1)
		w.Write(plain)
	}))
	defer srv.Close()
	ids := []string{"1aaa", "2aaa", "3aaa", "4aaa", "5aaa", "6aaa"}
	for _, limit := range []int{1, 2} {
		peak.Store(0)
		hits.Store(0)
		structs, err := testParser(srv, WithConcurrency(limit)).FetchAll(context.Background(), ids...)
		if err != nil {
			Te.Fatal(err)
		}
		if len(structs) != len(ids) || hits.Load() != int32(len(ids)) {
			Te.Errorf("limit %d: got %d structures from %d requests", limit, len(structs), hits.Load())
		}
		if p := peak.Load(); p > int32(limit) || p < 1 {
			Te.Errorf("limit %d: %d downloads ran at the same time", limit, p)
		}
	}
}
