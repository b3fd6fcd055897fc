package parser_test

import (
	"testing"

	"dlint/internal/ast"
	"dlint/internal/diag"
	"dlint/internal/lexer"
	"dlint/internal/parser"
	"dlint/internal/source"
	"dlint/internal/testkit"
)

func parseSource(t *testing.T, input string) (*ast.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d", []byte(input)))
	tokens := lexer.ScanAll(file, lexer.Options{})
	bag := diag.NewBag(64)
	tree := parser.ParseFile(tokens, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	return tree, bag
}

func singleAggregate(t *testing.T, tree *ast.File) *ast.AggregateDecl {
	t.Helper()
	if len(tree.Decls) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(tree.Decls))
	}
	agg, ok := tree.Decls[0].(*ast.AggregateDecl)
	if !ok {
		t.Fatalf("expected aggregate, got %T", tree.Decls[0])
	}
	return agg
}

func memberFunc(t *testing.T, agg *ast.AggregateDecl, i int) *ast.FuncDecl {
	t.Helper()
	if i >= len(agg.Members) {
		t.Fatalf("aggregate has %d members, want index %d", len(agg.Members), i)
	}
	fn, ok := agg.Members[i].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("member %d: expected function, got %T", i, agg.Members[i])
	}
	return fn
}

func TestModuleHeader(t *testing.T) {
	tree, _ := parseSource(t, "module foo.bar.baz;\n")
	if tree.Module != "foo.bar.baz" {
		t.Errorf("Module = %q, want %q", tree.Module, "foo.bar.baz")
	}
}

func TestInterfaceWithMethods(t *testing.T) {
	tree, bag := parseSource(t, `
module a;
interface I
{
	int foo();
	const int bar();
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	agg := singleAggregate(t, tree)
	if agg.Kind != ast.AggInterface || agg.Name != "I" {
		t.Fatalf("got %s %q", agg.Kind, agg.Name)
	}
	if len(agg.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(agg.Members))
	}
	foo := memberFunc(t, agg, 0)
	if foo.Name != "foo" || foo.Signature == nil || foo.Signature.Qualifiers != 0 {
		t.Errorf("foo parsed wrong: %+v", foo)
	}
	bar := memberFunc(t, agg, 1)
	if bar.Name != "bar" || bar.Signature == nil || !bar.Signature.Qualifiers.Has(ast.QualConst) {
		t.Errorf("bar must carry const from prefix position: %+v", bar)
	}
}

func TestSuffixQualifiers(t *testing.T) {
	tree, _ := parseSource(t, `
class C
{
	int foo() const;
	immutable int g();
	int h() inout { return 0; }
}
`)
	agg := singleAggregate(t, tree)
	wantQuals := []ast.QualifierFlags{ast.QualConst, ast.QualImmutable, ast.QualInout}
	for i, want := range wantQuals {
		fn := memberFunc(t, agg, i)
		if fn.Signature == nil || fn.Signature.Qualifiers != want {
			t.Errorf("member %d qualifiers = %v, want %v", i, fn.Signature, want)
		}
	}
}

func TestPropertyEitherPosition(t *testing.T) {
	tree, _ := parseSource(t, `
class C
{
	@property int front() const;
	int back() @property;
	int plain();
}
`)
	agg := singleAggregate(t, tree)
	if fn := memberFunc(t, agg, 0); !fn.Signature.IsProperty || !fn.Signature.Qualifiers.Has(ast.QualConst) {
		t.Errorf("prefix @property lost: %+v", fn.Signature)
	}
	if fn := memberFunc(t, agg, 1); !fn.Signature.IsProperty {
		t.Errorf("suffix @property lost: %+v", fn.Signature)
	}
	if fn := memberFunc(t, agg, 2); fn.Signature.IsProperty {
		t.Errorf("plain function wrongly marked @property")
	}
}

func TestParamCount(t *testing.T) {
	tree, _ := parseSource(t, `
class C
{
	void a();
	void b(int x);
	void c(int x, string y, C z);
	void d(int x = f(1, 2), int y);
}
`)
	agg := singleAggregate(t, tree)
	want := []uint32{0, 1, 3, 2}
	for i, n := range want {
		fn := memberFunc(t, agg, i)
		if fn.Signature == nil || fn.Signature.ParamCount != n {
			t.Errorf("member %d ParamCount = %v, want %d", i, fn.Signature, n)
		}
	}
}

func TestTemplateFunctionSignatureUnresolved(t *testing.T) {
	tree, _ := parseSource(t, `
class C
{
	T max(T)(T a, T b) { return a; }
	int plain();
}
`)
	agg := singleAggregate(t, tree)
	if fn := memberFunc(t, agg, 0); fn.Signature != nil {
		t.Errorf("template function must have nil signature, got %+v", fn.Signature)
	}
	if fn := memberFunc(t, agg, 1); fn.Signature == nil {
		t.Error("plain function lost its signature")
	}
}

func TestTypeConstructorIsNotAQualifier(t *testing.T) {
	tree, _ := parseSource(t, `
class C
{
	const(int) bar();
}
`)
	agg := singleAggregate(t, tree)
	fn := memberFunc(t, agg, 0)
	if fn.Name != "bar" {
		t.Fatalf("name = %q", fn.Name)
	}
	if fn.Signature == nil || fn.Signature.Qualifiers != 0 {
		t.Errorf("const(int) must qualify the return type, not the function: %+v", fn.Signature)
	}
}

func TestStorageFlags(t *testing.T) {
	tree, _ := parseSource(t, `
interface I
{
	abstract int foo();
	static void helper();
	final override int bar();
}
`)
	agg := singleAggregate(t, tree)
	if fn := memberFunc(t, agg, 0); !fn.Storage.Has(ast.StorageAbstract) {
		t.Error("abstract flag missing")
	}
	if fn := memberFunc(t, agg, 1); !fn.Storage.Has(ast.StorageStatic) {
		t.Error("static flag missing")
	}
	if fn := memberFunc(t, agg, 2); !fn.Storage.Has(ast.StorageFinal | ast.StorageOverride) {
		t.Error("final override flags missing")
	}
}

func TestNestedAggregates(t *testing.T) {
	tree, _ := parseSource(t, `
class Outer
{
	struct Inner
	{
		int get() const;
	}
	int method();
}
`)
	outer := singleAggregate(t, tree)
	if len(outer.Members) != 2 {
		t.Fatalf("outer has %d members, want 2", len(outer.Members))
	}
	inner, ok := outer.Members[0].(*ast.AggregateDecl)
	if !ok || inner.Kind != ast.AggStruct || inner.Name != "Inner" {
		t.Fatalf("nested struct parsed wrong: %#v", outer.Members[0])
	}
	if fn := memberFunc(t, inner, 0); !fn.Signature.Qualifiers.Has(ast.QualConst) {
		t.Error("nested method lost const")
	}
}

func TestConstructorsAndFieldsIgnored(t *testing.T) {
	tree, _ := parseSource(t, `
class C
{
	this(int x) {}
	~this() {}
	int field;
	int[3] arr;
	int init = f(1);
	int method();
}
`)
	agg := singleAggregate(t, tree)
	if len(agg.Members) != 1 {
		t.Fatalf("got %d members, want only the method", len(agg.Members))
	}
	if fn := memberFunc(t, agg, 0); fn.Name != "method" {
		t.Errorf("kept %q, want method", fn.Name)
	}
}

func TestContractsAndBodies(t *testing.T) {
	tree, bag := parseSource(t, `
class C
{
	int f(int x)
	in { assert(x > 0); }
	out (r) { assert(r >= 0); }
	do { return x; }
	int g() { if (true) { return 1; } return 0; }
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	agg := singleAggregate(t, tree)
	if len(agg.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(agg.Members))
	}
	if fn := memberFunc(t, agg, 0); fn.Signature.ParamCount != 1 {
		t.Errorf("f ParamCount = %d, want 1", fn.Signature.ParamCount)
	}
}

func TestUnclosedBraceReported(t *testing.T) {
	_, bag := parseSource(t, "class C {\n int f();\n")
	if !bag.HasErrors() {
		t.Error("expected an unclosed brace diagnostic")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.SynUnclosedBrace {
			found = true
		}
	}
	if !found {
		t.Errorf("missing SynUnclosedBrace, got %v", bag.Items())
	}
}

func TestSkippedDeclarations(t *testing.T) {
	tree, _ := parseSource(t, `
enum Color { red, green }
alias Int = int;
template T(U) { alias T = U; }
unittest { assert(true); }
version (X) { int hidden(); } else { int alsoHidden(); }
class C { int kept(); }
`)
	agg := singleAggregate(t, tree)
	if agg.Name != "C" || len(agg.Members) != 1 {
		t.Fatalf("surviving decl parsed wrong: %q with %d members", agg.Name, len(agg.Members))
	}
}

func TestSpanInvariants(t *testing.T) {
	input := `
module a.b;
class Outer
{
	struct Inner
	{
		const int g() { return 0; }
	}
	int f() const { return 1; }
	abstract void h();
}
interface I
{
	void f();
}
`
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d", []byte(input)))
	tokens := lexer.ScanAll(file, lexer.Options{})
	tree := parser.ParseFile(tokens, parser.Options{})
	if err := testkit.CheckSpanInvariants(tree, file); err != nil {
		t.Fatal(err)
	}
}
