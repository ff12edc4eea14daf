// Package blocks loads block definitions from a registry directory and
// installs or uninstalls them into a project's rule store.
//
// A block is a named bundle of rules spread over one or more scopes. Install
// replaces every rule previously stamped with the block's id by the block's
// current rules, leaving project-local rules and rules of other blocks
// untouched. Uninstall removes the stamped rules again. Both operations keep
// the project config's blocks list in step.
package blocks
