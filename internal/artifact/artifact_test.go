package artifact

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x00}

	a := Artifact{
		MimeType: "image/png",
		Data:     base64.StdEncoding.EncodeToString(payload),
		Encoding: EncodingBase64,
	}
	got, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("decoded bytes = %v, want %v", got, payload)
	}

	text := Artifact{MimeType: "text/plain", Data: "hello", Encoding: EncodingText}
	got, err = text.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("text bytes = %q", got)
	}
}

func TestBytesRejectsMalformedBase64(t *testing.T) {
	a := Artifact{MimeType: "image/png", Data: "!!not-base64!!", Encoding: EncodingBase64}
	if _, err := a.Bytes(); err == nil {
		t.Fatal("expected error for malformed base64")
	}
}

func TestMediaClassifiers(t *testing.T) {
	cases := []struct {
		mime    string
		audio   bool
		image   bool
		textual bool
	}{
		{mime: "audio/mpeg", audio: true},
		{mime: "audio/wav", audio: true},
		{mime: "image/png", image: true},
		{mime: "text/plain", textual: true},
		{mime: "text/markdown", textual: true},
		{mime: "application/pdf", textual: true},
		{mime: "application/zip"},
	}
	for _, tc := range cases {
		a := Artifact{MimeType: tc.mime}
		if a.IsAudio() != tc.audio || a.IsImage() != tc.image || a.IsTextual() != tc.textual {
			t.Fatalf("%s: audio=%v image=%v textual=%v", tc.mime, a.IsAudio(), a.IsImage(), a.IsTextual())
		}
	}
}

func TestFromFileTextStaysRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "essay.txt")
	if err := os.WriteFile(path, []byte("an essay about agency"), 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if a.Encoding != EncodingText {
		t.Fatalf("encoding = %s, want text", a.Encoding)
	}
	if a.Data != "an essay about agency" {
		t.Fatalf("data = %q", a.Data)
	}
	if a.MimeType != "text/plain" {
		t.Fatalf("mime = %q, want text/plain", a.MimeType)
	}
}

func TestFromFileBinaryIsBase64(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track.mp3")
	payload := []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	a, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if a.Encoding != EncodingBase64 {
		t.Fatalf("encoding = %s, want base64", a.Encoding)
	}
	if !a.IsAudio() {
		t.Fatalf("mime = %q, want audio/*", a.MimeType)
	}
	decoded, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(decoded) != string(payload) {
		t.Fatal("base64 round trip lost bytes")
	}
}
