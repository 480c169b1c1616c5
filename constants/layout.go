package constants

// Linear Flow
const (
	// WordSpacingRatio is the inter-word gap as a fraction of the font size
	WordSpacingRatio = 0.25

	// LineWidthBudget is the fraction of the surface width a line may occupy
	// before the fit loop starts shrinking the font
	LineWidthBudget = 0.85

	// FontFloor is the smallest font size the fit loop will reach; text that
	// still overflows at the floor is drawn overflowing
	FontFloor = 12

	// FontCeiling bounds the starting font size for a line
	FontCeiling = 42
)

// Orbital Flow
const (
	// OrbitRadiusMin and OrbitRadiusMax bound the ring radius as a fraction
	// of the shorter surface dimension
	OrbitRadiusMin = 0.20
	OrbitRadiusMax = 0.28

	// OrbitWordPadding is the fixed arc padding added to each word's width
	// when carving angular slots (cells)
	OrbitWordPadding = 2.0

	// OrbitCollisionPasses bounds the pairwise separation sweep
	OrbitCollisionPasses = 3

	// PlacementSmoothing is the per-frame exponential smoothing factor for
	// word positions
	PlacementSmoothing = 0.08
)
