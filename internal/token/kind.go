package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// Declaration attributes and aggregate keywords. KwAbstract..KwUnion is a
	// contiguous block: IsDeclAttrKeyword relies on it when filtering tokens
	// that may precede an aggregate keyword on the same line.

	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwImmutable represents the 'immutable' keyword.
	KwImmutable // immutable
	// KwInout represents the 'inout' keyword.
	KwInout // inout
	// KwShared represents the 'shared' keyword.
	KwShared // shared
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwFinal represents the 'final' keyword.
	KwFinal // final
	// KwOverride represents the 'override' keyword.
	KwOverride // override
	// KwPure represents the 'pure' keyword.
	KwPure // pure
	// KwNothrow represents the 'nothrow' keyword.
	KwNothrow // nothrow
	// KwRef represents the 'ref' keyword.
	KwRef // ref
	// KwScope represents the 'scope' keyword.
	KwScope // scope
	// KwAuto represents the 'auto' keyword.
	KwAuto // auto
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUnion represents the 'union' keyword.
	KwUnion // union

	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwAlias represents the 'alias' keyword.
	KwAlias // alias
	// KwTemplate represents the 'template' keyword.
	KwTemplate // template
	// KwMixin represents the 'mixin' keyword.
	KwMixin // mixin
	// KwModule represents the 'module' keyword.
	KwModule // module
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwUnittest represents the 'unittest' keyword.
	KwUnittest // unittest
	// KwVersion represents the 'version' keyword.
	KwVersion // version
	// KwInvariant represents the 'invariant' keyword.
	KwInvariant // invariant
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwDelegate represents the 'delegate' keyword.
	KwDelegate // delegate
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwForeach represents the 'foreach' keyword.
	KwForeach // foreach
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwCast represents the 'cast' keyword.
	KwCast // cast
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwOut represents the 'out' keyword.
	KwOut // out
	// KwLazy represents the 'lazy' keyword.
	KwLazy // lazy
	// KwAlign represents the 'align' keyword.
	KwAlign // align
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// KwVoid represents the 'void' basic type keyword.
	KwVoid // void
	// KwBool represents the 'bool' basic type keyword.
	KwBool // bool
	// KwByte represents the 'byte' basic type keyword.
	KwByte // byte
	// KwUbyte represents the 'ubyte' basic type keyword.
	KwUbyte // ubyte
	// KwShort represents the 'short' basic type keyword.
	KwShort // short
	// KwUshort represents the 'ushort' basic type keyword.
	KwUshort // ushort
	// KwInt represents the 'int' basic type keyword.
	KwInt // int
	// KwUint represents the 'uint' basic type keyword.
	KwUint // uint
	// KwLong represents the 'long' basic type keyword.
	KwLong // long
	// KwUlong represents the 'ulong' basic type keyword.
	KwUlong // ulong
	// KwFloat represents the 'float' basic type keyword.
	KwFloat // float
	// KwDouble represents the 'double' basic type keyword.
	KwDouble // double
	// KwReal represents the 'real' basic type keyword.
	KwReal // real
	// KwChar represents the 'char' basic type keyword.
	KwChar // char
	// KwString represents the 'string' alias keyword.
	KwString // string

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// TildeAssign represents the tilde assign operator token.
	TildeAssign // ~=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Shl represents the shl operator token.
	Shl // <<
	// Shr represents the shr operator token.
	Shr // >>
	// UShr represents the unsigned shr operator token.
	UShr // >>>
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon operator token.
	Colon // :
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// DotDot represents the dot dot operator token.
	DotDot // ..
	// DotDotDot represents the dot dot dot (vararg) operator token.
	DotDotDot // ...
	// FatArrow represents the fat arrow (lambda) operator token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the at token introducing an attribute.
	At // @
	// Dollar represents the dollar token.
	Dollar // $
	// Hash represents the hash token.
	Hash // #
)

// IsDeclAttrKeyword reports whether the kind is a declaration attribute or
// aggregate keyword, i.e. a keyword that may legally precede an aggregate
// keyword on its declaration line.
func (k Kind) IsDeclAttrKeyword() bool {
	return k >= KwAbstract && k <= KwUnion
}

// IsQualifier reports whether the kind is a mutability qualifier keyword.
func (k Kind) IsQualifier() bool {
	switch k {
	case KwConst, KwImmutable, KwInout:
		return true
	default:
		return false
	}
}

// IsBasicType reports whether the kind is a built-in type keyword.
func (k Kind) IsBasicType() bool {
	return k >= KwVoid && k <= KwString
}
