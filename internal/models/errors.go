package models

import "errors"

// ErrEmptyStationCode indicates a write was attempted without a station code
var ErrEmptyStationCode = errors.New("station code cannot be empty")
