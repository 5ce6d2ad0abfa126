package pets

const (
	smallMaxWeight  = 10.0
	mediumMaxWeight = 25.0
)

// ClassifySize deriva el porte a partir del peso (kg).
// weight > 0 lo valida el caller.
func ClassifySize(weight float64) SizeTier {
	switch {
	case weight <= smallMaxWeight:
		return SizeSmall
	case weight <= mediumMaxWeight:
		return SizeMedium
	default:
		return SizeLarge
	}
}
