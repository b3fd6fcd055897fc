package lint_test

import (
	"reflect"
	"sort"
	"testing"

	"dlint/internal/diag"
	"dlint/internal/lexer"
	"dlint/internal/lint"
	"dlint/internal/parser"
	"dlint/internal/source"
)

func runFuncAttr(t *testing.T, input string) (*lint.Context, []diag.Diagnostic) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d", []byte(input)))
	// lexical errors are swallowed during the pre-scan
	tokens := lexer.ScanAll(file, lexer.Options{})
	tree := parser.ParseFile(tokens, parser.Options{})

	bag := diag.NewBag(64)
	ctx := &lint.Context{
		FileSet:  fs,
		File:     file,
		Tree:     tree,
		Tokens:   tokens,
		Reporter: &diag.BagReporter{Bag: bag},
	}
	lint.NewFuncAttrRule().Run(ctx)
	return ctx, bag.Items()
}

func expectMessages(t *testing.T, input string, want []string) {
	t.Helper()
	_, diags := runFuncAttr(t, input)
	var got []string
	for _, d := range diags {
		got = append(got, d.Message)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("diagnostic %d = %q, want %q", i, got[i], want[i])
		}
	}
}

const (
	wantAbstract = "'abstract' attribute is redundant in interface declarations"
	wantConst    = "Zero-parameter '@property' function should be marked 'const', 'inout', or 'immutable'."
)

func TestZeroParamPropertyWithoutQualifier(t *testing.T) {
	expectMessages(t, `
class C
{
	int bar() @property { return 0; }
}
`, []string{wantConst})
}

func TestQualifierBeforeReturnType(t *testing.T) {
	expectMessages(t, `
class C
{
	const int bar() { return 0; }
}
`, []string{"'const' is not an attribute of the return type. Place it after the parameter list to clarify."})
}

func TestImmutableBeforeReturnType(t *testing.T) {
	expectMessages(t, `
struct S
{
	immutable int g() { return 1; }
}
`, []string{"'immutable' is not an attribute of the return type. Place it after the parameter list to clarify."})
}

func TestSuffixQualifierAccepted(t *testing.T) {
	expectMessages(t, `
class C
{
	int bar() const @property { return 0; }
}
`, nil)
}

func TestAbstractInInterface(t *testing.T) {
	expectMessages(t, `
interface I
{
	abstract int method();
}
`, []string{wantAbstract})
}

func TestAbstractOutsideInterfaceAccepted(t *testing.T) {
	expectMessages(t, `
class C
{
	abstract int method();
}
`, nil)
}

func TestStaticFunctionExempt(t *testing.T) {
	expectMessages(t, `
class C
{
	static int barStatic() @property { return 0; }
}
`, nil)
}

func TestPrefixPropertyDoesNotWarn(t *testing.T) {
	// the advisory targets the suffix attribute position only
	expectMessages(t, `
class C
{
	@property int bar() { return 0; }
}
`, nil)
}

func TestPropertyWithParameterAccepted(t *testing.T) {
	expectMessages(t, `
class C
{
	void bar(int value) @property { }
}
`, nil)
}

func TestStaticAggregateSuppressesBody(t *testing.T) {
	expectMessages(t, `
class C
{
	static struct S
	{
		const int f() { return 0; }
		int g() @property { return 0; }
	}
}
`, nil)
}

func TestSiblingScopeRestored(t *testing.T) {
	// the static struct must not leak its suppressed scope to its sibling
	expectMessages(t, `
class C
{
	static struct S
	{
		const int f() { return 0; }
	}
	const int g() { return 0; }
}
`, []string{"'const' is not an attribute of the return type. Place it after the parameter list to clarify."})
}

func TestNestedClassResetsInterfaceFlag(t *testing.T) {
	expectMessages(t, `
interface I
{
	class Impl
	{
		abstract int inner();
	}
	abstract int outer();
}
`, []string{wantAbstract})
}

func TestTopLevelFunctionIgnored(t *testing.T) {
	expectMessages(t, `
const int f() { return 0; }
`, nil)
}

func TestTemplateFunctionSkipped(t *testing.T) {
	expectMessages(t, `
class C
{
	const T f(T)(T x) { return x; }
}
`, nil)
}

func TestDiagnosticAnchoredAtName(t *testing.T) {
	ctx, diags := runFuncAttr(t, "class C\n{\n\tconst int bar() { return 0; }\n}\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	pos := ctx.Pos(diags[0].Primary)
	if pos.Line != 3 || pos.Col != 12 {
		t.Errorf("anchored at %d:%d, want 3:12 (the function name)", pos.Line, pos.Col)
	}
	if diags[0].Code != diag.LintFunctionAttribute {
		t.Errorf("code = %v, want LintFunctionAttribute", diags[0].Code)
	}
	if diags[0].Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", diags[0].Severity)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	input := `
interface I
{
	abstract int method();
	const int bar();
	int baz() @property;
}
`
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.d", []byte(input)))
	tokens := lexer.ScanAll(file, lexer.Options{})
	tree := parser.ParseFile(tokens, parser.Options{})
	rule := lint.NewFuncAttrRule()

	run := func() []diag.Diagnostic {
		bag := diag.NewBag(64)
		rule.Run(&lint.Context{
			FileSet: fs, File: file, Tree: tree, Tokens: tokens,
			Reporter: &diag.BagReporter{Bag: bag},
		})
		return bag.Items()
	}
	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("runs differ:\nfirst:  %v\nsecond: %v", first, second)
	}
	if len(first) == 0 {
		t.Error("expected diagnostics from the fixture")
	}
}

func TestRuleMetadata(t *testing.T) {
	rule := lint.NewFuncAttrRule()
	if rule.Name() != "function_attribute_check" {
		t.Errorf("Name = %q", rule.Name())
	}
	if rule.Code().ID() != "LNT3001" {
		t.Errorf("Code ID = %q", rule.Code().ID())
	}
}

// applyFirstFix replays the edits of the first suggested fix against the
// original input, newest offset first so earlier spans stay valid.
func applyFirstFix(t *testing.T, input string, diags []diag.Diagnostic) string {
	t.Helper()
	if len(diags) == 0 || len(diags[0].Fixes) == 0 {
		t.Fatalf("expected a diagnostic with a fix, got %v", diags)
	}
	edits := append([]diag.FixEdit(nil), diags[0].Fixes[0].Edits...)
	sort.Slice(edits, func(i, j int) bool { return edits[i].Span.Start > edits[j].Span.Start })
	buf := []byte(input)
	for _, e := range edits {
		if e.OldText != "" && string(buf[e.Span.Start:e.Span.End]) != e.OldText {
			t.Fatalf("guard mismatch: have %q, want %q", buf[e.Span.Start:e.Span.End], e.OldText)
		}
		buf = append(append(append([]byte(nil), buf[:e.Span.Start]...), []byte(e.NewText)...), buf[e.Span.End:]...)
	}
	return string(buf)
}

func TestQualifierMoveFix(t *testing.T) {
	input := "class C\n{\n\tconst int bar() { return 0; }\n}\n"
	_, diags := runFuncAttr(t, input)
	got := applyFirstFix(t, input, diags)
	want := "class C\n{\n\tint bar() const { return 0; }\n}\n"
	if got != want {
		t.Errorf("fixed source = %q, want %q", got, want)
	}
}

func TestQualifierMoveFixSkipsTypeConstructor(t *testing.T) {
	input := "class C\n{\n\timmutable const(int) bar() { return 0; }\n}\n"
	_, diags := runFuncAttr(t, input)
	got := applyFirstFix(t, input, diags)
	want := "class C\n{\n\tconst(int) bar() immutable { return 0; }\n}\n"
	if got != want {
		t.Errorf("fixed source = %q, want %q", got, want)
	}
}

func TestAbstractRemovalFix(t *testing.T) {
	input := "interface I\n{\n\tabstract void f();\n}\n"
	_, diags := runFuncAttr(t, input)
	got := applyFirstFix(t, input, diags)
	want := "interface I\n{\n\tvoid f();\n}\n"
	if got != want {
		t.Errorf("fixed source = %q, want %q", got, want)
	}
}

func TestPropertyAdviceCarriesNoFix(t *testing.T) {
	_, diags := runFuncAttr(t, "class C\n{\n\tint bar() @property { return 0; }\n}\n")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v", diags)
	}
	if len(diags[0].Fixes) != 0 {
		t.Errorf("qualifier choice is ambiguous, expected no fix, got %v", diags[0].Fixes)
	}
}
