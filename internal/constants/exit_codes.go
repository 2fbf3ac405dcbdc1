package constants

import (
	gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"
)

const (
	ExitCodeLaunch      gaba.ExitCode = 100
	ExitCodeShowQR      gaba.ExitCode = 101
	ExitCodeInfo        gaba.ExitCode = 102
	ExitCodeReload      gaba.ExitCode = 103
	ExitCodeOpenLibrary gaba.ExitCode = 104
	ExitCodeNoResults   gaba.ExitCode = 404
)
