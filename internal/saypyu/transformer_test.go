package saypyu

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
)

var streamInputs = []string{
	"",
	"krʌˈsteɪʃən",
	"ˈstɜːrɪŋ",
	"tʃɜːtʃ",
	"(ˈhɛləʊ) ðə ˈkæt",
	"faɪər aʊə ɔːr oʊr",
	"e eː e: ɪə ɪər",
	"a\xffb",
	strings.Repeat("dʒʌdʒ ", 1000),
}

func TestTransformer_String(t *testing.T) {
	for _, in := range streamInputs {
		got, _, err := transform.String(NewTransformer(), in)
		if err != nil {
			t.Fatalf("transform.String(%q) error: %v", in, err)
		}
		if want := Transliterate(in); got != want {
			t.Errorf("transform.String(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTransformer_OneByteReads(t *testing.T) {
	for _, in := range streamInputs {
		r := transform.NewReader(iotest.OneByteReader(strings.NewReader(in)), NewTransformer())
		got, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("reading %q: %v", in, err)
		}
		if want := Transliterate(in); string(got) != want {
			t.Errorf("one byte reads of %q = %q, want %q", in, got, want)
		}
	}
}

func TestTransformer_Writer(t *testing.T) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, NewTransformer())

	in := "krʌˈsteɪʃən"
	// split inside the two-byte ʌ and between e and ɪ
	parts := []string{in[:3], in[3:9], in[9:]}
	for _, p := range parts {
		if _, err := w.Write([]byte(p)); err != nil {
			t.Fatalf("Write(%q): %v", p, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := buf.String(); got != "krɘsteyshɘn" {
		t.Errorf("writer output = %q, want %q", got, "krɘsteyshɘn")
	}
}

func TestTransformer_ShortSrc(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 16)

	nDst, nSrc, err := tr.Transform(dst, []byte("e"), false)
	if err != transform.ErrShortSrc {
		t.Fatalf("Transform(e, atEOF=false) error = %v, want ErrShortSrc", err)
	}
	if nDst != 0 || nSrc != 0 {
		t.Errorf("Transform(e, atEOF=false) = %d, %d; want 0, 0", nDst, nSrc)
	}

	nDst, nSrc, err = tr.Transform(dst, []byte("e"), true)
	if err != nil {
		t.Fatalf("Transform(e, atEOF=true) error = %v", err)
	}
	if string(dst[:nDst]) != "e" || nSrc != 1 {
		t.Errorf("Transform(e, atEOF=true) = %q, %d; want %q, 1", dst[:nDst], nSrc, "e")
	}
}

func TestTransformer_ShortDst(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 2)

	nDst, nSrc, err := tr.Transform(dst, []byte("tʃ"), true)
	if err != transform.ErrShortDst {
		t.Fatalf("Transform error = %v, want ErrShortDst", err)
	}
	if nDst != 0 || nSrc != 0 {
		t.Errorf("Transform = %d, %d; want 0, 0", nDst, nSrc)
	}
}
