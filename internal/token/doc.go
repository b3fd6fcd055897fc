// Package token defines the lexical vocabulary of the linted D-style
// language: token kinds, the keyword table, and leading trivia.
package token
