// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command rotations converts, composes and inspects finite
// rotations, and runs the large-rotation exercises.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("rotations failed", "err", err)
		os.Exit(1)
	}
}
