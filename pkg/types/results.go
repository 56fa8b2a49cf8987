package types

// Entry is a single key/value pair as shown to callers of the commands layer.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Path    string  `json:"path"`
	Entries []Entry `json:"entries"`
}

// GetResult holds the result of the 'get' command.
// A missing key is reported with Found=false rather than an error.
type GetResult struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

// SetResult holds the result of the 'set' and 'import' commands.
type SetResult struct {
	Path     string   `json:"path"`
	Written  []Entry  `json:"written"`
	Replaced []string `json:"replaced,omitempty"` // keys that already had a value
	Synced   bool     `json:"synced"`
}

// DeleteResult holds the result of the 'delete' command.
type DeleteResult struct {
	Path    string   `json:"path"`
	Removed []string `json:"removed"`
	Missing []string `json:"missing,omitempty"` // keys that were not present
	Synced  bool     `json:"synced"`
}

// GenConfigResult holds the result of the 'genconfig' command.
type GenConfigResult struct {
	ConfigContent string   `json:"config_content"`
	FilesWritten  []string `json:"files_written"`
}
