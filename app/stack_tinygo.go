//go:build tinygo

package app

// TinyGo cannot walk goroutine stacks.
func captureStack() []byte {
	return nil
}
