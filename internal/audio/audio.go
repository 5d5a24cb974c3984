// Package audio plays the short synthesized cues of the game.
// Cues are fire-and-forget: nothing is reported back to the caller.
package audio

// Sound identifies a cue.
type Sound int

const (
	SoundHover Sound = iota
	SoundSelect
	SoundStart
	SoundPause
	SoundCrash
	SoundLifeLost
	SoundSmash
	SoundCoin
)

// Sounds lists every cue.
var Sounds = []Sound{SoundHover, SoundSelect, SoundStart, SoundPause, SoundCrash, SoundLifeLost, SoundSmash, SoundCoin}

func (s Sound) String() string {
	switch s {
	case SoundHover:
		return "hover"
	case SoundSelect:
		return "select"
	case SoundStart:
		return "start"
	case SoundPause:
		return "pause"
	case SoundCrash:
		return "crash"
	case SoundLifeLost:
		return "lifeLost"
	case SoundSmash:
		return "smash"
	case SoundCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Player triggers cues. Implementations must not block the caller.
type Player interface {
	Play(Sound)
}

// Nop discards every cue. It is used for SSH sessions and when audio
// is disabled or unavailable.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) {}
