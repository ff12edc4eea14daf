// Package types defines the core types and interfaces used throughout devw.
// This includes the rule and block data model, the project config view and
// the filesystem interface the stores are written against.
package types
