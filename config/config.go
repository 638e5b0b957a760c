package config

import "time"

// Config holds general window and loop configuration
type Config struct {
	Title  string
	Width  int
	Height int

	// Frame pacing
	FPS         int
	FrameBudget time.Duration
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Asset
	ImagePath string

	// Movement
	MoveSpeed int // pixels per frame
	JumpForce float64

	// Physics
	Gravity      float64 // added to dy every airborne frame
	RestingSpeed float64 // dy while grounded or dragged by the mouse
}

// Global configuration instances
var C *Config
var Player PlayerConfig

func init() {
	C = &Config{
		Title:  "Game Engine V0.1 - By @juliocesardev",
		Width:  1280,
		Height: 720,
		FPS:    60,
	}
	// Integer division: the budget is 16ms, not 16.67ms.
	C.FrameBudget = time.Duration(1000/C.FPS) * time.Millisecond

	Player = PlayerConfig{
		ImagePath:    "./images/player.png",
		MoveSpeed:    5,
		JumpForce:    20,
		Gravity:      2,
		RestingSpeed: 2,
	}
}
