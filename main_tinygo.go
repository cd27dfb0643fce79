//go:build tinygo

package main

import (
	"litclock/app"
	"litclock/hal"
)

func main() {
	app.Run(hal.New())
}
