// Copyright 2020 Aleksandr Demakin. All rights reserved.

package negatable

import (
	"github.com/rs/zerolog"

	"github.com/avdva/negatable/internal/consts"
)

var logger = zerolog.Nop()

// SetLogger sets a logger for diagnostic messages, like series that reached MaxSeriesIterations.
// Nothing is logged by default.
// This function is not thread-safe, so this should be called on program start.
func SetLogger(l zerolog.Logger) {
	logger = l
	consts.SetLogger(l)
}

func logNonConvergence(series string, iterations int) {
	logger.Debug().
		Str("series", series).
		Int("iterations", iterations).
		Msg("series did not converge")
}
