package station

import "github.com/thenoetrevino/novi/internal/models"

// Station-related errors
var (
	// Validation errors
	ErrEmptyStationCode = models.ErrEmptyStationCode
)
