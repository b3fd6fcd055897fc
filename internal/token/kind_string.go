package token

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	KwAbstract:  "KwAbstract",
	KwConst:     "KwConst",
	KwImmutable: "KwImmutable",
	KwInout:     "KwInout",
	KwShared:    "KwShared",
	KwStatic:    "KwStatic",
	KwFinal:     "KwFinal",
	KwOverride:  "KwOverride",
	KwPure:      "KwPure",
	KwNothrow:   "KwNothrow",
	KwRef:       "KwRef",
	KwScope:     "KwScope",
	KwAuto:      "KwAuto",
	KwExtern:    "KwExtern",
	KwExport:    "KwExport",
	KwPublic:    "KwPublic",
	KwPrivate:   "KwPrivate",
	KwProtected: "KwProtected",
	KwPackage:   "KwPackage",
	KwInterface: "KwInterface",
	KwClass:     "KwClass",
	KwStruct:    "KwStruct",
	KwUnion:     "KwUnion",

	KwEnum:      "KwEnum",
	KwAlias:     "KwAlias",
	KwTemplate:  "KwTemplate",
	KwMixin:     "KwMixin",
	KwModule:    "KwModule",
	KwImport:    "KwImport",
	KwUnittest:  "KwUnittest",
	KwVersion:   "KwVersion",
	KwInvariant: "KwInvariant",
	KwThis:      "KwThis",
	KwSuper:     "KwSuper",
	KwNew:       "KwNew",
	KwDelegate:  "KwDelegate",
	KwFunction:  "KwFunction",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwWhile:     "KwWhile",
	KwDo:        "KwDo",
	KwFor:       "KwFor",
	KwForeach:   "KwForeach",
	KwSwitch:    "KwSwitch",
	KwCase:      "KwCase",
	KwDefault:   "KwDefault",
	KwBreak:     "KwBreak",
	KwContinue:  "KwContinue",
	KwReturn:    "KwReturn",
	KwGoto:      "KwGoto",
	KwTry:       "KwTry",
	KwCatch:     "KwCatch",
	KwFinally:   "KwFinally",
	KwThrow:     "KwThrow",
	KwCast:      "KwCast",
	KwIs:        "KwIs",
	KwIn:        "KwIn",
	KwOut:       "KwOut",
	KwLazy:      "KwLazy",
	KwAlign:     "KwAlign",
	KwTypeof:    "KwTypeof",
	KwWith:      "KwWith",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	KwNull:      "KwNull",

	KwVoid:   "KwVoid",
	KwBool:   "KwBool",
	KwByte:   "KwByte",
	KwUbyte:  "KwUbyte",
	KwShort:  "KwShort",
	KwUshort: "KwUshort",
	KwInt:    "KwInt",
	KwUint:   "KwUint",
	KwLong:   "KwLong",
	KwUlong:  "KwUlong",
	KwFloat:  "KwFloat",
	KwDouble: "KwDouble",
	KwReal:   "KwReal",
	KwChar:   "KwChar",
	KwString: "KwString",

	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",

	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	CaretAssign:   "CaretAssign",
	TildeAssign:   "TildeAssign",
	ShlAssign:     "ShlAssign",
	ShrAssign:     "ShrAssign",
	EqEq:          "EqEq",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shl:           "Shl",
	Shr:           "Shr",
	UShr:          "UShr",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	Tilde:         "Tilde",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	PlusPlus:      "PlusPlus",
	MinusMinus:    "MinusMinus",
	Question:      "Question",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Dot:           "Dot",
	DotDot:        "DotDot",
	DotDotDot:     "DotDotDot",
	FatArrow:      "FatArrow",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	At:            "At",
	Dollar:        "Dollar",
	Hash:          "Hash",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
