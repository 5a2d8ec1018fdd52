package ports

// Workspace is the subject root on disk. All paths are slash-separated and
// relative to the root; "" names the root itself.
type Workspace interface {
	Path(rel ...string) string
	EnsureDir(rel string) error
	Exists(rel string) (bool, error)
	// ReadFile returns "" for a missing file.
	ReadFile(rel string) (string, error)
	WriteFile(rel, content string) error
	// Glob returns entry names in dir matching pattern. A missing dir yields no names.
	Glob(dir, pattern string) ([]string, error)
}
