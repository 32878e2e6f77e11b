// Package common holds world constants shared by the level, physics and
// viewer packages.
package common

const (
	// Gravity is the vertical acceleration in world units per second squared.
	// The world is y-up.
	Gravity = -9.8

	// PixelsPerMeter scales world units to screen pixels.
	PixelsPerMeter = 100

	ScreenWidth  = 1600
	ScreenHeight = 900

	// TickRate is the fixed physics step rate.
	TickRate = 60
)
