package ibaqpy

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func gzipBytes(t *testing.T, content string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDetectDataType(t *testing.T) {
	if dt, err := DetectDataType(bytes.NewReader(gzipBytes(t, "hello world"))); err != nil || dt != DataTypeGzip {
		t.Errorf("gzip stream detected as %v (err %v)", dt, err)
	}
	if dt, err := DetectDataType(strings.NewReader("a,b,c\n1,2,3\n")); err != nil || dt != DataTypeNoCompression {
		t.Errorf("plain stream detected as %v (err %v)", dt, err)
	}
	// Shorter than any signature still counts as plain data.
	if dt, err := DetectDataType(strings.NewReader("ab")); err != nil || dt != DataTypeNoCompression {
		t.Errorf("tiny stream detected as %v (err %v)", dt, err)
	}
}

func TestOpenInputSniffsGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv.gz")
	if err := os.WriteFile(path, gzipBytes(t, "a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, forceGzip := range []bool{false, true} {
		r, err := OpenInput(path, forceGzip)
		if err != nil {
			t.Fatalf("forceGzip=%v: %v", forceGzip, err)
		}
		content, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("forceGzip=%v: %v", forceGzip, err)
		}
		if string(content) != "a,b\n1,2\n" {
			t.Errorf("forceGzip=%v: content %q", forceGzip, content)
		}
	}
}

func TestOpenInputPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := OpenInput(path, false)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "a,b\n1,2\n" {
		t.Errorf("content = %q", content)
	}
}

func TestOpenInputForcedGzipOnPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenInput(path, true); err == nil {
		t.Fatal("expected an error forcing gzip on plain text")
	}
}

func TestDetectDelimiter(t *testing.T) {
	if delim, ok := DetectDelimiter(strings.NewReader("a\tb\tc\n1\t2\t3\n4\t5\t6\n")); !ok || delim != '\t' {
		t.Errorf("detected %q (ok=%v), want tab", delim, ok)
	}
	if delim, ok := DetectDelimiter(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n")); !ok || delim != ',' {
		t.Errorf("detected %q (ok=%v), want comma", delim, ok)
	}
}
