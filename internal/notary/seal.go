// Package notary seals a certificate over the exact artifact bytes. The
// hash is deterministic per byte sequence; only the identifier and
// timestamp vary between runs.
package notary

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"provenant/internal/artifact"
	"provenant/internal/verr"
)

// Certificate binds a content hash to a freshly minted identifier and an
// issuance timestamp.
type Certificate struct {
	CertID         string `json:"cert_id"`
	ArtifactSHA256 string `json:"artifact_sha256"`
	IssuedAt       string `json:"issued_at"`
}

// Sealer mints certificates. The clock is injectable for deterministic
// tests; NewSealer wires the wall clock.
type Sealer struct {
	now func() time.Time
}

func NewSealer() *Sealer {
	return &Sealer{now: time.Now}
}

// NewSealerAt builds a sealer with a fixed clock.
func NewSealerAt(now func() time.Time) *Sealer {
	return &Sealer{now: now}
}

// Seal hashes the artifact payload and mints the certificate. The only
// failure mode is an undecodable payload, which counts as a hashing
// failure: scoring must not proceed over bytes that were never hashed.
func (s *Sealer) Seal(a artifact.Artifact) (Certificate, error) {
	data, err := a.Bytes()
	if err != nil {
		return Certificate{}, verr.Wrap(err, verr.CategoryHashingFailure, "artifact_decode_failed", false)
	}

	sum := sha256.Sum256(data)

	return Certificate{
		CertID:         uuid.NewString(),
		ArtifactSHA256: hex.EncodeToString(sum[:]),
		IssuedAt:       s.now().UTC().Format(time.RFC3339),
	}, nil
}
