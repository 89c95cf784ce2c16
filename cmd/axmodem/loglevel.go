package main

import "github.com/charmbracelet/log"

const (
	logLevelInfo  = log.InfoLevel
	logLevelDebug = log.DebugLevel
)
