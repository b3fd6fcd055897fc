package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo                       Code = 1000
	LexUnknownChar                Code = 1001
	LexUnterminatedString         Code = 1002
	LexUnterminatedBlockComment   Code = 1003
	LexBadNumber                  Code = 1004
	LexUnterminatedChar           Code = 1005
	LexUnterminatedNestingComment Code = 1006

	// Declaration parsing
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedBrace    Code = 2002
	SynExpectIdentifier Code = 2003

	// Lint checks
	LintInfo              Code = 3000
	LintFunctionAttribute Code = 3001

	// I/O
	IOLoadFileError Code = 4000

	// Configuration
	CfgInvalidConfig Code = 5001
	CfgUnknownCheck  Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                   "unknown diagnostic",
	LexInfo:                       "lexical information",
	LexUnknownChar:                "unknown character",
	LexUnterminatedString:         "unterminated string literal",
	LexUnterminatedBlockComment:   "unterminated block comment",
	LexBadNumber:                  "malformed number literal",
	LexUnterminatedChar:           "unterminated character literal",
	LexUnterminatedNestingComment: "unterminated nesting comment",
	SynInfo:                       "syntax information",
	SynUnexpectedToken:            "unexpected token",
	SynUnclosedBrace:              "unclosed brace",
	SynExpectIdentifier:           "expected identifier",
	LintInfo:                      "lint information",
	LintFunctionAttribute:         "function attribute placement",
	IOLoadFileError:               "I/O load file error",
	CfgInvalidConfig:              "invalid configuration file",
	CfgUnknownCheck:               "unknown check name in configuration",
}

// checkKeys maps lint codes to the stable rule keys consumed by downstream
// tooling for suppression and filtering.
var checkKeys = map[Code]string{
	LintFunctionAttribute: "function_attribute_check",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

// Key returns the stable rule key for lint codes, or "" for non-lint codes.
func (c Code) Key() string {
	return checkKeys[c]
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
