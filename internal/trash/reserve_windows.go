//go:build windows

package trash

// a rename cannot replace an existing file or directory here
const canReplacePlaceholder = false
