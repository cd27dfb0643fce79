//go:build !tinygo

package app

import "runtime/debug"

func captureStack() []byte {
	return debug.Stack()
}
