package ports

// ViewInvalidator marks cached renders of a route path stale.
type ViewInvalidator interface {
	Invalidate(path string)
}

// ViewCache stores rendered views keyed by route path plus query string.
//
// A reader takes the path's Generation before it reads storage and hands it
// back to Put. Put discards the view when the path was invalidated in between,
// so a render of pre-mutation data never outlives the mutation's invalidation.
type ViewCache interface {
	ViewInvalidator
	Get(key string) (any, bool)
	Generation(path string) uint64
	Put(key string, generation uint64, view any)
}
