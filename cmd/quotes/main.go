package main

import (
	"os"

	"quotebook-backend/pkg/logger"
)

func main() {
	logger.Init("development", os.Getenv("LOG_LEVEL"))

	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
