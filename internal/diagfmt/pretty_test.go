package diagfmt

import (
	"strings"
	"testing"

	"sable/internal/diag"
	"sable/internal/source"
)

func TestPretty_WithLocation(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.sbl", []byte("let veryLongName = 1\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.EmitNameTooLong, source.Span{File: id, Start: 4, End: 16}, "name does not fit"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	want := "main.sbl:1:5: ERROR [EMIT4001]: name does not fit\n" +
		"  let veryLongName = 1\n" +
		"      ^~~~~~~~~~~~\n"
	if sb.String() != want {
		t.Errorf("Pretty() =\n%q\nwant\n%q", sb.String(), want)
	}
}

func TestPretty_WithoutLocation(t *testing.T) {
	fs := source.NewFileSet()

	bag := diag.NewBag(4)
	bag.Add(diag.NewWarning(diag.EmitLocalNameTooLong, source.NoSpan, "local name omitted from debug data"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	// Без позиции в исходнике печатаем только заголовок, без выдуманных строк.
	want := "WARNING [EMIT4003]: local name omitted from debug data\n"
	if sb.String() != want {
		t.Errorf("Pretty() = %q, want %q", sb.String(), want)
	}
}

func TestPretty_SecondLineSpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("two.sbl", []byte("first\nsecond line\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.EmitPathTooLong, source.Span{File: id, Start: 6, End: 12}, "path slot overflow"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	want := "two.sbl:2:1: ERROR [EMIT4002]: path slot overflow\n" +
		"  second line\n" +
		"  ^~~~~~\n"
	if sb.String() != want {
		t.Errorf("Pretty() =\n%q\nwant\n%q", sb.String(), want)
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()

	d := diag.NewError(diag.EmitNameTooLong, source.NoSpan, "name does not fit").
		WithNote(source.NoSpan, "declared here")
	bag := diag.NewBag(4)
	bag.Add(d)

	var hidden strings.Builder
	Pretty(&hidden, bag, fs, PrettyOpts{})
	if strings.Contains(hidden.String(), "declared here") {
		t.Error("notes rendered without ShowNotes")
	}

	var shown strings.Builder
	Pretty(&shown, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(shown.String(), "INFO [EMIT4001]: declared here") {
		t.Errorf("note missing from output: %q", shown.String())
	}
}
