package source

import (
	"testing"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.d", []byte("class C {}\n"))
	f := fs.Get(id)

	if f.Path != "test.d" {
		t.Errorf("Path = %q, want test.d", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if len(f.LineIdx) != 1 {
		t.Errorf("LineIdx = %v, want one entry", f.LineIdx)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.d", []byte("int x;\nint y;\n"))

	start, end := fs.Resolve(Span{File: id, Start: 7, End: 10})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 4 {
		t.Errorf("end = %d:%d, want 2:4", end.Line, end.Col)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.d", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		num  uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.num); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestFileSetHashDiffers(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.AddVirtual("a.d", []byte("int x;")))
	b := fs.Get(fs.AddVirtual("b.d", []byte("int y;")))
	if a.Hash == b.Hash {
		t.Error("different contents must hash differently")
	}
}
