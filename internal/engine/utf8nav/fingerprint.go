package utf8nav

const (
	fingerprintBase = 1099511628211
	fingerprintSeed = 14695981039346656037
)

// Fingerprint returns a polynomial hash of text. Derived indices store the
// fingerprint of the text they were built from and compare it on the next
// query instead of comparing content. The length is mixed in to separate
// texts that differ only by trailing zero bytes.
func Fingerprint(text string) uint64 {
	h := uint64(fingerprintSeed)
	for i := 0; i < len(text); i++ {
		h = h*fingerprintBase + uint64(text[i]) + 1
	}
	return h ^ uint64(len(text))
}
