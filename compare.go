package artstub

// Images with different checksums can still be interchangeable after
// re-encoding or resizing, so equivalence falls back to perceptual hashing.
const equivalenceThreshold = 5

// Equivalent reports whether two images are visually interchangeable.
func (i *Image) Equivalent(other *Image) bool {
	if i == nil || other == nil {
		return false
	}
	if i.Checksum() == other.Checksum() {
		return true
	}
	distance, err := i.Distance(other)
	if err != nil {
		return false
	}
	return distance < equivalenceThreshold
}

// Distance returns the perceptual hash distance between two images.
func (i *Image) Distance(other *Image) (int, error) {
	aHash, err := i.PHash()
	if err != nil {
		return 0, err
	}
	bHash, err := other.PHash()
	if err != nil {
		return 0, err
	}
	return aHash.Distance(bHash)
}
