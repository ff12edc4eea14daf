// Package registry provides a small generic, thread-safe index of named
// items that remembers registration order. The block loader uses it to key
// block definitions by id.
package registry
