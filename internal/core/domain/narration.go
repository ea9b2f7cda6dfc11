package domain

// Speaker identifies one of the two podcast hosts.
type Speaker string

// The two fixed hosts of a narration script.
const (
	SpeakerHost1 Speaker = "host1"
	SpeakerHost2 Speaker = "host2"
)

// IsValid returns true if the speaker is recognised.
func (s Speaker) IsValid() bool {
	return s == SpeakerHost1 || s == SpeakerHost2
}

// Other returns the opposite host.
func (s Speaker) Other() Speaker {
	if s == SpeakerHost1 {
		return SpeakerHost2
	}
	return SpeakerHost1
}

// NarrationSegment is one speaker turn in a generated podcast script.
// The script is consumed by an external narration player; the core
// stops at the text to be spoken.
type NarrationSegment struct {
	// Speaker is the host delivering this segment.
	Speaker Speaker

	// Text is the sentence or phrase to be spoken.
	Text string
}
