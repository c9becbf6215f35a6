package repository

// ResultCache stores rendered calculation responses keyed by an input
// fingerprint, so identical loans skip recomputation.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
