package service

// TokenGenerator produces candidate partner tokens from a cryptographically
// strong random source. Single calls carry no uniqueness guarantee; the
// lifecycle layer enforces uniqueness through store-level collision checks.
type TokenGenerator interface {
	// Generate returns a fixed-length lowercase hexadecimal token.
	Generate() (string, error)
}
