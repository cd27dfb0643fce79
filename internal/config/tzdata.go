//go:build !tinygo

package config

// Zones resolve even on hosts without a zoneinfo database.
import _ "time/tzdata"
