package catalog

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a short content hash of a serialized graph. The
// build command logs it so release tooling can tell whether a rebuild
// actually changed the graph.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
