/*
 * fetch.go, part of nanopdb.
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
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//PDB IDs are a digit 1-9 followed by 3 alphanumeric characters.
var pdbIDRe = regexp.MustCompile(`^[1-9][A-Za-z0-9]{3}$`)

//NormalizeID checks that id is a PDB ID and returns it in lower case, the way
//the RCSB file names are written.
func NormalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if !pdbIDRe.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return strings.ToLower(id), nil
}

//URL returns the address from which Fetch would download id.
func (P *Parser) URL(id string) (string, error) {
	code, err := NormalizeID(id)
	if err != nil {
		return "", err
	}
	return P.baseURL + code + ".pdb", nil
}

//Fetch downloads the structure with the given PDB ID and reads it.
//A single request is made. Any answer other than 200 OK is returned as a
//*FetchError carrying the status code.
func (P *Parser) Fetch(ctx context.Context, id string) (*Structure, error) {
	code, err := NormalizeID(id)
	if err != nil {
		return nil, err
	}
	url := P.baseURL + code + ".pdb"
	if P.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, P.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{ID: code, URL: url, Err: err, deco: []string{"Fetch"}}
	}
	start := time.Now()
	P.log.Debug("fetching structure", zap.String("pdbid", code), zap.String("url", url))
	resp, err := P.client.Do(req)
	if err != nil {
		return nil, &FetchError{ID: code, URL: url, Err: err, deco: []string{"Fetch"}}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{ID: code, URL: url, StatusCode: resp.StatusCode, deco: []string{"Fetch"}}
	}
	s, err := P.Read(resp.Body)
	if err != nil {
		return nil, &FetchError{ID: code, URL: url, Err: err, deco: []string{"Fetch"}}
	}
	if s.id == "" {
		s.id = strings.ToUpper(code)
	}
	P.log.Debug("structure fetched", zap.String("pdbid", s.id), zap.Duration("elapsed", time.Since(start)))
	return s, nil
}

//FetchAll fetches all the given ids, with at most the configured number of
//downloads at the same time. The structures are returned in the same order as ids.
//The first error cancels the remaining downloads and is returned.
func (P *Parser) FetchAll(ctx context.Context, ids ...string) ([]*Structure, error) {
	for _, id := range ids {
		if _, err := NormalizeID(id); err != nil {
			return nil, err
		}
	}
	ret := make([]*Structure, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(P.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			s, err := P.Fetch(ctx, id)
			if err != nil {
				return errDecorate(err, "FetchAll")
			}
			ret[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
