package cues

import "embed"

// soundFiles holds the built-in announcer clips, one WAV per cue named after it.
//
//go:embed sounds/*.wav
var soundFiles embed.FS
