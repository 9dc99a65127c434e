package credentials

// Storage is a key-value store scoped to the current client, the Go
// counterpart of the browser's origin-scoped localStorage.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
