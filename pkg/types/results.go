package types

// BlockChange records the effect of one add or remove on a single block.
type BlockChange struct {
	BlockID string `json:"blockId"`
	Rules   int    `json:"rules"`
}

// AddBlocksResult holds the result of the 'add' command.
type AddBlocksResult struct {
	Installed []BlockChange `json:"installed"`
}

// RemoveBlocksResult holds the result of the 'remove' command.
type RemoveBlocksResult struct {
	Removed []BlockChange `json:"removed"`
}

// ListBlocksResult holds the result of the 'list' command.
type ListBlocksResult struct {
	Blocks []BlockInfo `json:"blocks"`
}

// BlockInfo contains summary information about a single registry block.
type BlockInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Rules       int    `json:"rules"`
	Installed   bool   `json:"installed"`
	// Missing marks a block listed in the project config that the registry
	// no longer provides.
	Missing bool `json:"missing"`
}

// StatusResult holds the result of the 'status' command.
type StatusResult struct {
	Rules      int    `json:"rules"`
	Hash       string `json:"hash"`
	StoredHash string `json:"storedHash"`
	// Changed is true when the current hash differs from the cached one or
	// no hash was cached yet.
	Changed bool `json:"changed"`
	Written bool `json:"written"`
}

// SpliceResult holds the result of the 'splice' command.
type SpliceResult struct {
	Target  string `json:"target"`
	Changed bool   `json:"changed"`
	// Created is set when the target did not exist.
	Created bool `json:"created"`
	// Replaced is set when an existing region was replaced; otherwise a new
	// region was appended.
	Replaced bool `json:"replaced"`
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	Root    string   `json:"root"`
	Created []string `json:"created"`
}
