package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestBundleRoundTrip(t *testing.T) {
	entries := []Entry{
		{Filename: "report.csv", Data: []byte("Category,Item,Value\n")},
		{Filename: "invoice.csv", Data: []byte("Item Reference,Date\n")},
	}

	data, err := Bundle(entries)
	if err != nil {
		t.Fatalf("Bundle returned error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open bundle: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 files, got %d", len(zr.File))
	}
	for i, f := range zr.File {
		if f.Name != entries[i].Filename {
			t.Fatalf("file %d name = %q, want %q", i, f.Name, entries[i].Filename)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		got, _ := io.ReadAll(rc)
		rc.Close()
		if !bytes.Equal(got, entries[i].Data) {
			t.Fatalf("file %s content mismatch", f.Name)
		}
	}
}
