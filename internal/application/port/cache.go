package port

// Cache is a generic in-process key-value cache.
// Implementations must be safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Get returns the value and true when the key is present.
	Get(key K) (V, bool)

	// Set stores a value, evicting the least recently used entry when full.
	Set(key K, value V)

	// Remove deletes a key.
	Remove(key K)

	// Purge drops every entry.
	Purge()

	// Len returns the number of entries.
	Len() int
}
