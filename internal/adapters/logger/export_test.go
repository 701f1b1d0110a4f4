package logger

// ParseLevel exposes parseLevel for tests.
var ParseLevel = parseLevel
