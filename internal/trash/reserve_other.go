//go:build !windows

package trash

const canReplacePlaceholder = true
