package catalog

import "context"

// Source loads a catalog from some backing store. Implementations must
// return a catalog that is safe to share read-only between goroutines.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}
