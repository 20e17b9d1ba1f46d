package constants

import "time"

// Playfield geometry, in canvas pixels
const (
	// DefaultFieldWidth is the playfield width in pixels
	DefaultFieldWidth = 600

	// DefaultFieldHeight is the playfield height in pixels
	DefaultFieldHeight = 400

	// DefaultCellSize is the pixel edge of one grid cell
	DefaultCellSize = 20
)

// Snake spawn
const (
	// InitialSnakeLength is the segment count at session start
	InitialSnakeLength = 3

	// MinGridWidth fits the horizontal spawn line with head at column InitialSnakeLength
	MinGridWidth = InitialSnakeLength + 1

	// MinGridHeight is one row
	MinGridHeight = 1
)

// Difficulty tick intervals
const (
	EasyInterval   = 180 * time.Millisecond
	NormalInterval = 140 * time.Millisecond
	HardInterval   = 90 * time.Millisecond
)

// Scoring and food cadence
const (
	// FoodPoints is awarded per regular food item
	FoodPoints = 1

	// BonusPoints is awarded per bonus food item
	BonusPoints = 20

	// BonusEveryNthFood spawns a bonus on each multiple of this food count
	BonusEveryNthFood = 5

	// BonusLifetime is the bonus countdown length in countdown units
	BonusLifetime = 7

	// BonusCountdownUnit is the wall-clock length of one countdown unit
	BonusCountdownUnit = time.Second

	// SpawnAttempts is the random placement budget before the corner fallback
	SpawnAttempts = 100
)

// EventQueueSize is the ring buffer capacity, must be a power of two
const EventQueueSize = 256

// EventBufferMask is the index mask for EventQueueSize
const EventBufferMask = EventQueueSize - 1
