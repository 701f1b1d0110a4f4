// Package build holds build-time information.
package build

// Version is the nonopt version, overwritten by -ldflags at release time.
var Version = "dev"
