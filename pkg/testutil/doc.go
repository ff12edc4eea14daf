// Package testutil provides test environments for devw components.
//
// A TestEnvironment holds a project root and a block registry directory,
// either on an in-memory filesystem (EnvMemoryOnly) or in a real temp
// directory (EnvIsolated). Helpers write project config, scope files and
// block definitions inline so each test carries its own data.
package testutil
