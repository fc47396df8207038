package logic

import "time"

// Typewriter timings for the hero headline
const (
	TypeDelay       = 100 * time.Millisecond
	DeleteDelay     = 50 * time.Millisecond
	PhrasePause     = 2 * time.Second
	NextPhrasePause = 500 * time.Millisecond
	TypewriterStart = time.Second
)

// Typewriter types a phrase one rune at a time, holds it, deletes it and
// moves on to the next phrase. Each Step returns the text to show and how
// long to wait before the next Step.
type Typewriter struct {
	phrases  [][]rune
	phrase   int
	chars    int
	deleting bool
}

// NewTypewriter builds a typewriter over phrases
func NewTypewriter(phrases []string) *Typewriter {
	tw := &Typewriter{}
	for _, p := range phrases {
		tw.phrases = append(tw.phrases, []rune(p))
	}
	return tw
}

// Step advances by one character
func (tw *Typewriter) Step() (string, time.Duration) {
	if len(tw.phrases) == 0 {
		return "", PhrasePause
	}

	current := tw.phrases[tw.phrase]
	if tw.deleting {
		tw.chars--
	} else {
		tw.chars++
	}
	tw.chars = max(0, min(tw.chars, len(current)))
	text := string(current[:tw.chars])

	delay := TypeDelay
	if tw.deleting {
		delay = DeleteDelay
	}

	switch {
	case !tw.deleting && tw.chars == len(current):
		delay = PhrasePause
		tw.deleting = true
	case tw.deleting && tw.chars == 0:
		tw.deleting = false
		tw.phrase = (tw.phrase + 1) % len(tw.phrases)
		delay = NextPhrasePause
	}
	return text, delay
}

// Phrase is the index of the phrase being typed
func (tw *Typewriter) Phrase() int {
	return tw.phrase
}
