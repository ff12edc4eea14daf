// Package rules reads and writes a project's rule store.
//
// The rule store is a directory of per-scope YAML documents:
//
//	scope: security
//	rules:
//	  - id: no-secrets
//	    severity: error
//	    content: Do not hardcode secrets.
//	    sourceBlock: security-basics
//
// Rules carrying a sourceBlock were installed by a block; rules without one
// belong to the project. Access goes through the narrow Store interface so
// block installation can run against the filesystem or an in-memory fake.
//
// Loading is forgiving: a missing or malformed scope file reads as an empty
// document for that scope. Writing is strict: any failure is returned.
package rules
