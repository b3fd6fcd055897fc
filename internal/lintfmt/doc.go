// Package lintfmt renders diagnostics and token dumps for the CLI: a pretty
// human-readable form with source context, and a stable JSON form for
// editor and CI integration.
package lintfmt
