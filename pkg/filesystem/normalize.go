package filesystem

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeRelativePath converts an OS-native relative path into the
// canonical form used for filter matching: forward-slash separators and
// Unicode NFC normalization. HFS+/APFS decompose accented characters into
// NFD sequences on disk, which would otherwise cause a glob like
// "café/**" to silently fail to match its own directory.
func NormalizeRelativePath(path string) string {
	if filepath.Separator != '/' {
		path = strings.ReplaceAll(path, string(filepath.Separator), "/")
	}
	return norm.NFC.String(path)
}

// JoinRelative joins a root with a slash-separated relative path, producing
// an OS-native absolute path.
func JoinRelative(root, relative string) string {
	if relative == "" {
		return root
	}
	segments := strings.Split(relative, "/")
	return filepath.Join(append([]string{root}, segments...)...)
}
