// Package lint holds the check registry, the per-file check context, and the
// built-in checks. Checks walk the declaration tree and may re-read the
// file's token list to recover syntactic facts the tree does not encode.
package lint
