package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	content := []byte("plain resume text")
	key, size, mimeType, err := store.Save(context.Background(), "user-1", "resume.txt", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime type, got %q", mimeType)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestSaveWithKeyOverwrites(t *testing.T) {
	store := New(t.TempDir())

	key := "abc123/generated/Resume_1.docx"
	if _, err := store.SaveWithKey(context.Background(), key, "application/octet-stream", strings.NewReader("first")); err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	n, err := store.SaveWithKey(context.Background(), key, "application/octet-stream", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("SaveWithKey overwrite: %v", err)
	}
	if n != int64(len("second")) {
		t.Fatalf("expected %d bytes written, got %d", len("second"), n)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../etc/passwd", "/etc/passwd"} {
		if _, err := store.Open(context.Background(), key); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
