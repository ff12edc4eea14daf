// Package filesystem implements types.FS with afero: the OS filesystem for
// real runs and a memory filesystem for tests. Writes go through a temporary
// file and a rename.
package filesystem
