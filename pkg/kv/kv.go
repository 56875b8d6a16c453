// Package kv provides the durable key-value capability the stores persist
// through. Implementations must be safe for concurrent use.
package kv

import "errors"

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errors.New("key not found")

// Store is a durable key-value port: get/set/delete by string key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
