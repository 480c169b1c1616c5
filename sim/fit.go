package sim

import "github.com/lixenwraith/hookdance/constants"

// LayoutRequest describes text the layout engine wants to place inside the
// safe render area
type LayoutRequest struct {
	TextWidth  float64
	TextHeight float64
	SafeWidth  float64
	SafeHeight float64
	FontSize   int
	LineHeight float64
}

// ValidateLayout is the single source of truth for "does this text fit".
// It returns the font size to use: unchanged when the request already fits,
// otherwise shrunk proportionally, never below the floor. At the floor the
// overflow is accepted rather than looping further.
func (s *Simulator) ValidateLayout(req LayoutRequest) int {
	if req.FontSize <= 0 {
		return constants.FontFloor
	}
	if req.SafeWidth <= 0 || req.SafeHeight <= 0 {
		return req.FontSize
	}
	if req.TextWidth <= req.SafeWidth && req.TextHeight <= req.SafeHeight {
		return req.FontSize
	}

	scale := 1.0
	if req.TextWidth > req.SafeWidth {
		scale = req.SafeWidth / req.TextWidth
	}
	if req.TextHeight > req.SafeHeight {
		if s := req.SafeHeight / req.TextHeight; s < scale {
			scale = s
		}
	}

	adjusted := int(float64(req.FontSize) * scale)
	if adjusted < constants.FontFloor {
		adjusted = constants.FontFloor
	}
	return adjusted
}
