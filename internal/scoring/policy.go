package scoring

// Policy carries the deployment-tunable ceilings. The caps are a fixed
// policy stance: an AI-assisted artifact never scores above them no matter
// what the formulas produce.
type Policy struct {
	// EthicalCap bounds the hybrid and music formulas.
	EthicalCap float64
	// ArtifactOnlyCap bounds the artifact-only formula.
	ArtifactOnlyCap float64
}

// DefaultPolicy matches the published PPM-HAS policy.
func DefaultPolicy() Policy {
	return Policy{
		EthicalCap:      75,
		ArtifactOnlyCap: 75,
	}
}
