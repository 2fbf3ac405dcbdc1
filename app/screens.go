package main

import (
	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/router"
)

// Screen identifiers for the router
type Screen = router.Screen

const (
	ScreenCarousel Screen = iota
	ScreenGameList
	ScreenGameDetails
	ScreenGameQR
	ScreenLaunch
	ScreenInfo
)
