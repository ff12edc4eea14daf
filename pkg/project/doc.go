// Package project reads and updates a project's .dwf/config.yml.
//
// Block membership is the only part of the config devw rewrites. Updates go
// through the YAML node tree so every other key, its order and its comments
// survive untouched.
package project
