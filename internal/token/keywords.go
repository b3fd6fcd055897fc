package token

var keywords = map[string]Kind{
	"abstract":  KwAbstract,
	"const":     KwConst,
	"immutable": KwImmutable,
	"inout":     KwInout,
	"shared":    KwShared,
	"static":    KwStatic,
	"final":     KwFinal,
	"override":  KwOverride,
	"pure":      KwPure,
	"nothrow":   KwNothrow,
	"ref":       KwRef,
	"scope":     KwScope,
	"auto":      KwAuto,
	"extern":    KwExtern,
	"export":    KwExport,
	"public":    KwPublic,
	"private":   KwPrivate,
	"protected": KwProtected,
	"package":   KwPackage,
	"interface": KwInterface,
	"class":     KwClass,
	"struct":    KwStruct,
	"union":     KwUnion,
	"enum":      KwEnum,
	"alias":     KwAlias,
	"template":  KwTemplate,
	"mixin":     KwMixin,
	"module":    KwModule,
	"import":    KwImport,
	"unittest":  KwUnittest,
	"version":   KwVersion,
	"invariant": KwInvariant,
	"this":      KwThis,
	"super":     KwSuper,
	"new":       KwNew,
	"delegate":  KwDelegate,
	"function":  KwFunction,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"do":        KwDo,
	"for":       KwFor,
	"foreach":   KwForeach,
	"switch":    KwSwitch,
	"case":      KwCase,
	"default":   KwDefault,
	"break":     KwBreak,
	"continue":  KwContinue,
	"return":    KwReturn,
	"goto":      KwGoto,
	"try":       KwTry,
	"catch":     KwCatch,
	"finally":   KwFinally,
	"throw":     KwThrow,
	"cast":      KwCast,
	"is":        KwIs,
	"in":        KwIn,
	"out":       KwOut,
	"lazy":      KwLazy,
	"align":     KwAlign,
	"typeof":    KwTypeof,
	"with":      KwWith,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"void":      KwVoid,
	"bool":      KwBool,
	"byte":      KwByte,
	"ubyte":     KwUbyte,
	"short":     KwShort,
	"ushort":    KwUshort,
	"int":       KwInt,
	"uint":      KwUint,
	"long":      KwLong,
	"ulong":     KwUlong,
	"float":     KwFloat,
	"double":    KwDouble,
	"real":      KwReal,
	"char":      KwChar,
	"string":    KwString,
}

// LookupKeyword returns the keyword kind for ident, if ident is a keyword.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
// Note '@property' is not here: 'property' is a plain identifier after '@'.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
