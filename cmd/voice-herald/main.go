package main

import "github.com/voice-herald/voice-herald/internal/application"

func main() {
	application.Initialize()
}
