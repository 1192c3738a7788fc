// Package cache provides a small generic LRU cache.
//
// The validator uses it to keep compiled regular expressions for pattern
// params: patterns come from declarations and schema files, so the set is
// usually small, but a bound keeps memory flat when callers build patterns
// dynamically.
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//	re, err := patterns.GetOrLoad(`^[a-z]+$`, regexp.Compile)
package cache
