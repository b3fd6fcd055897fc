// Package ast models the declaration-level tree dlint checks operate on:
// aggregate declarations (interface, class, struct, union) and the function
// declarations inside them. Statement- and expression-level syntax is not
// represented; the parser skips over it.
package ast
