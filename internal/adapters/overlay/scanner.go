// Package overlay probes a project tree for already-materialized components.
package overlay

import (
	"context"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mosaickit/mosaic/internal/core/domain"
)

// scanParallelism bounds concurrent stat calls during a scan.
const scanParallelism = 8

// Scanner implements ports.InstallScanner with direct filesystem probes.
// It holds no state: every Scan reflects current filesystem truth, so it
// is safe to call repeatedly while components are being materialized.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reports which of the given URIs exist under projectRoot using the
// URI-segments-to-path-segments convention. Stat failures of any kind
// (missing path, permission denied) count as not installed; a fresh or
// partially provisioned project is the expected caller context.
func (s *Scanner) Scan(ctx context.Context, projectRoot string, uris []string) (map[string]struct{}, error) {
	installed := make(map[string]struct{}, len(uris))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanParallelism)

	for _, uri := range uris {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := os.Stat(domain.InstallPath(projectRoot, uri)); err != nil {
				return nil
			}
			mu.Lock()
			installed[uri] = struct{}{}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return installed, nil
}
