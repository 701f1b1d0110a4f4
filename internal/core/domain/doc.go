// Package domain holds the optimization override rule and the types it operates on.
package domain
