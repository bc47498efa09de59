package main

import "time"

type mode int

const (
	modeView mode = iota
	modeCommand
)

type uiState struct {
	mode    mode
	command CommandInput
	notice  notice
	// debug footer
	queries   int
	lastQuery time.Duration
}
