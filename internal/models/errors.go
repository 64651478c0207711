package models

import "errors"

var (
	// ErrChannelNotFound is returned when a handle resolves to no channel
	ErrChannelNotFound = errors.New("channel not found")
	// ErrDataUnavailable is returned when an essential fetch fails
	ErrDataUnavailable = errors.New("channel data unavailable")
	// ErrInsufficientData is returned when there are no videos to measure
	ErrInsufficientData = errors.New("insufficient data: no videos to analyze")
)
