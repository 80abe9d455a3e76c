// Copyright 2024 The open62541pp Authors. All rights reserved.

package ua

import (
	"fmt"
	"log"
)

// LogLevel is the severity of a log message.
type LogLevel int

// LogLevels
const (
	LogLevelTrace LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarning
	LogLevelError
	LogLevelFatal
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarning:
		return "warning"
	case LogLevelError:
		return "error"
	case LogLevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// LogCategory is the subsystem a log message originates from.
type LogCategory int

// LogCategories
const (
	LogCategoryNetwork LogCategory = iota
	LogCategorySecureChannel
	LogCategorySession
	LogCategoryServer
	LogCategoryClient
	LogCategoryUserland
)

// String returns the category name.
func (c LogCategory) String() string {
	switch c {
	case LogCategoryNetwork:
		return "network"
	case LogCategorySecureChannel:
		return "securechannel"
	case LogCategorySession:
		return "session"
	case LogCategoryServer:
		return "server"
	case LogCategoryClient:
		return "client"
	case LogCategoryUserland:
		return "userland"
	default:
		return "unknown"
	}
}

// Logger receives log messages. A nil Logger discards them.
type Logger func(level LogLevel, category LogCategory, message string)

// Log formats a message and passes it to logger. Safe to call with a nil
// logger.
func Log(logger Logger, level LogLevel, category LogCategory, format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger(level, category, fmt.Sprintf(format, args...))
}

// DefaultLogger writes messages to the standard library logger.
func DefaultLogger() Logger {
	return func(level LogLevel, category LogCategory, message string) {
		log.Printf("[%s/%s] %s", level, category, message)
	}
}
