//go:build !(tinygo && bootdebug)

package app

import (
	"litclock/hal"
	"litclock/internal/layout"
)

func bootDiagStart(hal.HAL)             {}
func bootDiagSetStep(string)            {}
func bootScreen(*layout.Server, string) {}
