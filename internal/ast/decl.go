package ast

import "dlint/internal/source"

// Decl is any declaration the parser surfaces to the checks.
type Decl interface {
	// DeclSpan covers the whole declaration.
	DeclSpan() source.Span
}

// AggregateKind tags the four user-defined compound type forms.
type AggregateKind uint8

const (
	AggInterface AggregateKind = iota
	AggClass
	AggStruct
	AggUnion
)

func (k AggregateKind) String() string {
	switch k {
	case AggInterface:
		return "interface"
	case AggClass:
		return "class"
	case AggStruct:
		return "struct"
	case AggUnion:
		return "union"
	}
	return "unknown"
}

// AggregateDecl is an interface/class/struct/union declaration.
type AggregateDecl struct {
	Kind AggregateKind
	Name string
	// KeywordSpan is the span of the aggregate keyword itself; checks use it
	// to inspect what else sits on the declaration's line.
	KeywordSpan source.Span
	// NameSpan is the span of the declared name.
	NameSpan source.Span
	Span     source.Span
	Members  []Decl
}

func (d *AggregateDecl) DeclSpan() source.Span { return d.Span }

// StorageFlags is a bitset of storage classes and declaration attributes
// written in prefix position.
type StorageFlags uint16

const (
	StorageStatic StorageFlags = 1 << iota
	StorageAbstract
	StorageFinal
	StorageOverride
	StoragePure
	StorageNothrow
	StorageRef
	StorageAuto
)

// Has reports whether all given flags are set.
func (f StorageFlags) Has(flags StorageFlags) bool {
	return f&flags == flags
}

// QualifierFlags is a bitset of mutability qualifiers resolved onto a
// function's type, regardless of where they were written.
type QualifierFlags uint8

const (
	QualConst QualifierFlags = 1 << iota
	QualImmutable
	QualInout
)

// Has reports whether all given flags are set.
func (f QualifierFlags) Has(flags QualifierFlags) bool {
	return f&flags == flags
}

// Keyword returns the qualifier keyword implied by the set bits, checking
// const, then immutable, then inout; first match wins. The bits are mutually
// exclusive in well-formed input, so the order is a formality. Returns ""
// when no bit is set.
func (f QualifierFlags) Keyword() string {
	switch {
	case f.Has(QualConst):
		return "const"
	case f.Has(QualImmutable):
		return "immutable"
	case f.Has(QualInout):
		return "inout"
	}
	return ""
}

// FuncSignature is the resolved type information of a function declaration.
type FuncSignature struct {
	Qualifiers QualifierFlags
	IsProperty bool
	ParamCount uint32
}

// FuncDecl is a function declaration. Signature is nil when the type could
// not be resolved (template stubs); such declarations are skipped by every
// check; that is an invariant, not an error.
type FuncDecl struct {
	Name string
	// NameSpan anchors diagnostics and bounds the signature token window:
	// the window starts strictly after NameSpan.Start.
	NameSpan  source.Span
	Span      source.Span
	Storage   StorageFlags
	Signature *FuncSignature
}

func (d *FuncDecl) DeclSpan() source.Span { return d.Span }

// File is the root of one parsed source file.
type File struct {
	Module string // dotted module name from the module declaration, if any
	Decls  []Decl
}
