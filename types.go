package authclient

import "fmt"

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Navigator receives the logical destinations the subsystem computes. There
// are exactly three: entry, admin dashboard, user dashboard.
type Navigator interface {
	Navigate(destination Destination)
}

// NavigatorFunc adapts a function into a Navigator.
type NavigatorFunc func(destination Destination)

// Navigate satisfies the Navigator interface.
func (f NavigatorFunc) Navigate(destination Destination) {
	if f == nil {
		return
	}
	f(destination)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(Destination) {}

func normalizeNavigator(n Navigator) Navigator {
	if n == nil {
		return noopNavigator{}
	}
	return n
}

// Config holds client options
type Config interface {
	GetBaseURL() string
	GetAuthScheme() string
	GetStoragePath() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTHCLIENT "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTHCLIENT "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
