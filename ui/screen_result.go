package ui

import gaba "github.com/BrandonKowalski/gabagool/v2/pkg/gabagool"

// ScreenResult pairs a screen's output with the exit code it finished with.
type ScreenResult[T any] struct {
	Value    T
	ExitCode gaba.ExitCode
}

func success[T any](value T) ScreenResult[T] {
	return ScreenResult[T]{Value: value, ExitCode: gaba.ExitCodeSuccess}
}

func back[T any](value T) ScreenResult[T] {
	return ScreenResult[T]{Value: value, ExitCode: gaba.ExitCodeBack}
}

func withCode[T any](value T, code gaba.ExitCode) ScreenResult[T] {
	return ScreenResult[T]{Value: value, ExitCode: code}
}
