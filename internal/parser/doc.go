// Package parser extracts the declaration-level tree from a token stream:
// the module header, aggregate declarations, and the function declarations
// inside them. Function bodies, statements, and expressions are skipped with
// balanced-delimiter recovery, so a malformed region never hides the
// declarations around it.
package parser
