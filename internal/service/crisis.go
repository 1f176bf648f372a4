package service

import "strings"

// crisisPhrases are matched as lower-cased literal substrings, no word
// boundaries and no stemming. Over-triggering is the intended trade-off:
// surfacing the resource panel unnecessarily costs far less than missing a
// real signal.
var crisisPhrases = []string{
	"kill myself", "suicide", "suicidal", "end my life", "want to die",
	"don't want to live", "end it all", "self harm", "self-harm", "cutting myself",
	"hurt myself", "harm myself", "no reason to live", "better off dead",
	"can't go on", "take my own life", "overdose", "jump off", "hang myself",
	"slit my wrists", "not worth living", "world without me", "give up on life",
}

// CrisisDetector scans free text for crisis signals.
type CrisisDetector struct {
	phrases []string
}

func NewCrisisDetector() *CrisisDetector {
	return &CrisisDetector{phrases: crisisPhrases}
}

// Scan reports whether text contains any crisis phrase, case-insensitively.
// The first match short-circuits.
func (d *CrisisDetector) Scan(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range d.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
