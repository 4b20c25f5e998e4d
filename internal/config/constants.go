package config

import "time"

// Timer bounds.
const (
	MinMinutes     = 1
	MaxMinutes     = 60
	DefaultMinutes = 60
	TickInterval   = time.Second
)

// Dial geometry in abstract viewBox units.
const (
	// ArcRadius is the radius of the progress arc.
	ArcRadius = 120.0

	// DialPositions is the number of one-minute marks around the dial.
	DialPositions = 60

	// LabelEvery places a numeric label on every fifth mark.
	LabelEvery = 5

	// FullScaleMinutes is the duration one full turn of the dial represents.
	FullScaleMinutes = 60
)

// Application settings.
const (
	AppName      = "dialtimer"
	LogFileName  = "dialtimer.log"
	LogLevelEnv  = "DIALTIMER_LOG_LEVEL"
	EventBuffer  = 16
	DefaultTheme = "default"
)
