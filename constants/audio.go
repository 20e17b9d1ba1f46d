package constants

import "time"

// Bell Sound Timing (food eaten)
const (
	BellSoundDuration           = 400 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 350 * time.Millisecond
	BellSoundOvertoneRelease    = 150 * time.Millisecond
)

// Coin Sound Timing (bonus eaten)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Whoosh Sound Timing (bonus expired)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Buzz Sound Timing (game over)
const (
	BuzzSoundDuration = 450 * time.Millisecond
	BuzzSoundAttack   = 10 * time.Millisecond
	BuzzSoundRelease  = 250 * time.Millisecond
)

// Audio buffer
const (
	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond

	// DefaultSampleRate is the mixer sample rate in Hz
	DefaultSampleRate = 44100
)
