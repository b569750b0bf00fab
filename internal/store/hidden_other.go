//go:build !windows

package store

// hiddenName prefixes name with a dot, the Unix convention for hidden files.
func hiddenName(name string) string {
	return "." + name
}

// markHidden is a no-op: the leading dot already hides the file.
func markHidden(string) error { return nil }

// prepareReplace is a no-op: rename replaces regular files freely.
func prepareReplace(string) error { return nil }
