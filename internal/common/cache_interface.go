package common

import "time"

// NoExpiration keeps an entry for the lifetime of the process
const NoExpiration time.Duration = -1

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
