// Package config centralizes all tunable game parameters.
package config

import "time"

// Logical surface size used when nothing else is configured.
// Actual rendering scales to fit the host.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Frame and spawn timing. Both run off the wall clock.
const (
	TargetFPS     = 60
	FrameInterval = time.Second / TargetFPS
	SpawnInterval = 3 * time.Second
)

// Debris
const (
	DebrisCount = 10
	DebrisSpeed = 2.0
	DebrisLife  = 30 // Frames
)

// Terminal rendering
const (
	MaxTermWidth  = 200 // Columns; wider terminals get a centered, bordered canvas
	MaxTermHeight = 60  // Rows
)

// Terminal input. Terminals report no key releases, so a key counts as held
// until no repeat arrives within KeyHold.
const (
	KeyHold         = 150 * time.Millisecond
	IdleDisconnect  = 120 * time.Second
	ShutdownDisplay = 5 * time.Second // Shutdown notice shown before disconnect
)

// Scoreboard
const (
	TopScores         = 5
	MaxUsernameLength = 16
)
