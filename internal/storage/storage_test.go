package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, field, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func TestDiskUploaderRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	up := NewDiskUploader(dir, "http://test.local")

	fh := fileHeader(t, "resume", "cv.pdf", "application/pdf", []byte("%PDF-1.4 content"))
	url, err := up.Upload(context.Background(), fh, FolderResumes)
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if !strings.HasPrefix(url, "http://test.local/uploads/resumes/") {
		t.Fatalf("unexpected URL: %q", url)
	}
	if !strings.HasSuffix(url, "-cv.pdf") {
		t.Fatalf("original filename missing from URL: %q", url)
	}

	rel := strings.TrimPrefix(url, "http://test.local/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "%PDF-1.4 content" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestDiskUploaderUniqueKeys(t *testing.T) {
	t.Parallel()

	up := NewDiskUploader(t.TempDir(), "http://test.local")
	fh := fileHeader(t, "avatar", "me.png", "image/png", []byte("png"))

	first, err := up.Upload(context.Background(), fh, FolderImages)
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := up.Upload(context.Background(), fh, FolderImages)
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if first == second {
		t.Fatalf("expected unique keys, both were %q", first)
	}
}

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		field       string
		contentType string
		ok          bool
	}{
		{"resume", "application/pdf", true},
		{"resume", "application/msword", true},
		{"resume", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"resume", "image/png", false},
		{"avatar", "image/png", true},
		{"avatar", "application/pdf", false},
		{"companyLogo", "image/jpeg", true},
		{"companyLogo", "text/html", false},
		{"logo", "image/png", true},
		{"other", "application/octet-stream", true},
	}
	for _, tc := range cases {
		fh := fileHeader(t, tc.field, "f", tc.contentType, []byte("x"))
		err := CheckContentType(tc.field, fh)
		if tc.ok && err != nil {
			t.Fatalf("%s/%s: unexpected error %v", tc.field, tc.contentType, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s/%s: expected error", tc.field, tc.contentType)
		}
	}
}
