package goose

// ResourceStore holds temporary files created while crawling one article.
// Files are namespaced by the article's link hash as "{linkHash}_{name}".
type ResourceStore interface {
	// Save writes data under the link hash and returns the file path.
	Save(linkHash, name string, data []byte) (string, error)

	// Release deletes every file belonging to linkHash. It is idempotent;
	// a failure to delete one file does not stop the others from being
	// deleted, and all failures are reported together.
	Release(linkHash string) error
}
