// Package mirror implements the directory mirror and file copy
// primitives: the decision tables that turn a classified
// source entry and its (possibly absent) target counterpart into a
// concrete filesystem mutation, plus the mutations themselves. The
// Reconciliation Walker (pkg/engine) owns traversal order and concurrency;
// this package owns what happens to one entry once it has been reached.
package mirror
