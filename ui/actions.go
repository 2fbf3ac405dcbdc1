package ui

// Screens report what the user chose through these; the app router maps
// them to the next screen.

type CarouselAction int

const (
	CarouselActionMove CarouselAction = iota
	CarouselActionLaunch
	CarouselActionLibrary
	CarouselActionQuit
	CarouselActionInputLost
)

type GameListAction int

const (
	GameListActionSelected GameListAction = iota
	GameListActionInfo
	GameListActionBack
)

type GameDetailsAction int

const (
	GameDetailsActionLaunch GameDetailsAction = iota
	GameDetailsActionShowQR
	GameDetailsActionBack
)

type InfoAction int

const (
	InfoActionBack InfoAction = iota
	InfoActionRescan
)

type StartupAction int

const (
	StartupActionContinue StartupAction = iota
	StartupActionQuit
)
