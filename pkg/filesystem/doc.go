// Package filesystem implements Copycat's path and attribute layer:
// single-stat entry classification, hidden/system attribute detection, and
// the metadata-preserving primitives used by the file and directory copy
// operations. Platform-specific behavior is split across POSIX and
// Windows build-tagged files.
package filesystem
