package codec

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// Encode flattens the part of p below its volume root into a single name by
// replacing every separator with the escape character.
//
//	/home/alice/notes.txt -> alice!notes.txt (HomeRoot: /home)
//	D:/work/a.txt         -> work!a.txt
func (l Layout) Encode(p string) (string, error) {
	root, err := l.VolumeRoot(p)
	if err != nil {
		return "", err
	}
	rest, err := remainder(p, root)
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(rest, l.Escape) {
		return "", fmt.Errorf("%s: %w", p, ErrEscapeInPath)
	}
	return strings.ReplaceAll(rest, "/", string(l.Escape)), nil
}

// Place returns the location p takes inside its trash directory, before any
// collision suffix is applied.
func (l Layout) Place(p string) (string, error) {
	dir, err := l.TrashDirFor(p)
	if err != nil {
		return "", err
	}
	name, err := l.Encode(p)
	if err != nil {
		return "", err
	}
	return dir + "/" + name, nil
}

// Decode is the inverse of Place. Drive-style trash directories are tried
// before the home-style one. A path below a trashed directory decodes to
// where that child originally lived.
func (l Layout) Decode(trashed string) (string, error) {
	for _, dir := range l.TrashDirs(trashed) {
		rest, ok := strings.CutPrefix(trashed, dir+"/")
		if !ok || rest == "" {
			continue
		}
		root := strings.TrimSuffix(dir, l.DirName)
		// only the entry name is encoded; names below it are literal
		entry, nested, _ := strings.Cut(rest, "/")
		decoded := strings.ReplaceAll(entry, string(l.Escape), "/")
		if nested != "" {
			decoded += "/" + nested
		}
		return path.Clean(joinRoot(root, decoded)), nil
	}
	return "", fmt.Errorf("%s: %w", trashed, ErrNotTrashed)
}

// SplitSuffix splits a collision suffix (".N", N >= 1) off an entry name.
// Names without a suffix are returned as is with n == 0.
func SplitSuffix(name string) (base string, n int) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, 0
	}
	digits := name[i+1:]
	if digits[0] == '0' {
		return name, 0
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return name, 0
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return name, 0
	}
	return name[:i], n
}

// WithSuffix appends the collision suffix for generation n
func WithSuffix(p string, n int) string {
	if n <= 0 {
		return p
	}
	return p + "." + strconv.Itoa(n)
}

func remainder(p, root string) (string, error) {
	var rest string
	switch {
	case strings.HasSuffix(root, "/"):
		rest = strings.TrimPrefix(p, root)
		if rest == p {
			// "X:" without the trailing slash
			rest = ""
		}
	case p == root:
		rest = ""
	default:
		rest = strings.TrimPrefix(p, root+"/")
	}
	if rest == "" {
		return "", fmt.Errorf("%s: %w", p, ErrVolumeRoot)
	}
	rest = path.Clean(rest)
	if rest == "." || rest == ".." || strings.HasPrefix(rest, "../") {
		return "", fmt.Errorf("%s: %w", p, ErrOutsideRoot)
	}
	return rest, nil
}
