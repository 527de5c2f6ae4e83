// Package artifact models the uploaded creative work under evaluation.
// An Artifact is constructed once per request and never mutated: the
// sensor reads it, the notary hashes it.
package artifact

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

type Encoding string

const (
	EncodingBase64 Encoding = "base64"
	EncodingText   Encoding = "text"
)

// Artifact carries the payload plus enough typing for routing decisions.
// Data holds raw text for EncodingText and base64 bytes for EncodingBase64.
type Artifact struct {
	MimeType string   `json:"mimeType"`
	Data     string   `json:"data"`
	Encoding Encoding `json:"encoding"`
}

// Bytes returns the decoded payload for hashing.
func (a Artifact) Bytes() ([]byte, error) {
	if a.Encoding == EncodingBase64 {
		decoded, err := base64.StdEncoding.DecodeString(a.Data)
		if err != nil {
			return nil, fmt.Errorf("decode base64 artifact: %w", err)
		}
		return decoded, nil
	}
	return []byte(a.Data), nil
}

func (a Artifact) IsAudio() bool {
	return strings.HasPrefix(a.MimeType, "audio/")
}

func (a Artifact) IsImage() bool {
	return strings.HasPrefix(a.MimeType, "image/")
}

// IsTextual reports whether the similarity signal applies: plain text
// families and PDF (whose extracted text rides in Data).
func (a Artifact) IsTextual() bool {
	return strings.HasPrefix(a.MimeType, "text/") || a.MimeType == "application/pdf"
}

// FromFile reads path into an Artifact, classifying the MIME type by
// extension first and sniffed content as fallback. Binary media is
// base64-encoded; anything that looks like valid UTF-8 text stays raw.
func FromFile(path string) (Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("read artifact: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = http.DetectContentType(raw)
	}
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	if strings.HasPrefix(mimeType, "text/") && utf8.Valid(raw) {
		return Artifact{MimeType: mimeType, Data: string(raw), Encoding: EncodingText}, nil
	}
	return Artifact{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(raw),
		Encoding: EncodingBase64,
	}, nil
}
