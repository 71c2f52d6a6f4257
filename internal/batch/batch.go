// Package batch runs many salary calculations concurrently and moves
// profiles and results as NDJSON.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/career-roi/internal/salary"
	"golang.org/x/sync/errgroup"
)

// MaxLineBytes bounds one NDJSON profile line
const MaxLineBytes = 1 << 20

// Calculator prices one profile
type Calculator interface {
	Calculate(ctx context.Context, profile salary.Profile) (salary.Result, error)
}

// Item is one NDJSON output line
type Item struct {
	Index  int           `json:"index"`
	Result salary.Result `json:"result"`
}

// Run calculates every profile with at most workers goroutines. Results are
// returned in input order. The first error cancels the remaining work.
func Run(ctx context.Context, calc Calculator, profiles []salary.Profile, workers int) ([]salary.Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]salary.Result, len(profiles))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range profiles {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r, err := calc.Calculate(gCtx, profiles[i])
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Decode reads one JSON profile per line. Blank lines are skipped.
func Decode(r io.Reader) ([]salary.Profile, error) {
	var profiles []salary.Profile
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		var p salary.Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		profiles = append(profiles, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return profiles, nil
}

// Encode writes one Item per line
func Encode(w io.Writer, results []salary.Result) error {
	enc := json.NewEncoder(w)
	for i, r := range results {
		if err := enc.Encode(Item{Index: i, Result: r}); err != nil {
			return err
		}
	}
	return nil
}
