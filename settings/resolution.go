package settings

// Size is a display size in pixels.
type Size struct {
	Width  int
	Height int
}

// BestResolutionIndex returns the index of the resolution matching current
// exactly, or 0 when none does.
func BestResolutionIndex(resolutions []Size, current Size) int {
	for i, r := range resolutions {
		if r == current {
			return i
		}
	}
	return 0
}
