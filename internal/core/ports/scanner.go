package ports

import "context"

// InstallScanner defines the interface for probing which components are
// already materialized in a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type InstallScanner interface {
	// Scan reports the subset of uris whose install path exists under
	// projectRoot. Every call re-probes the filesystem; results are
	// never cached across calls.
	Scan(ctx context.Context, projectRoot string, uris []string) (map[string]struct{}, error)
}
