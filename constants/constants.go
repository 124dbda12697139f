package constants

import "os"

func GetRenderDir() string {
	path := os.Getenv("RENDER_PATH")
	if path != "" {
		return path
	}
	return "./render"
}

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

const DefaultSampleRate = 44100

// DefaultResolution is the length of one sequence step in whole notes.
const DefaultResolution = 1.0 / 16.0

const DefaultSignature = "4/4"

const DefaultBPM = 128

// RestId is the sequence value that means silence.
const RestId = 0
