// Package paths centralizes the .dwf directory layout:
//
//	<root>/.dwf/config.yml          project config
//	<root>/.dwf/rules/<scope>.yml   one rule file per scope
//	<root>/.dwf/.cache/rules.hash   cached rule-set fingerprint
//
// Directories are created on demand by the stores that write into them.
package paths
