// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gviegas/rotation/linear"
	"github.com/gviegas/rotation/rotation"
)

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		level   slog.LevelVar
	)
	root := &cobra.Command{
		Use:   "rotations",
		Short: "Finite rotations in 3D space",
		Long: `Convert between quaternions, rotation matrices and rotation
vectors, compose rotations and relate additive and multiplicative
rotation vector increments.

Quaternions are printed scalar-first. Rotation vectors are printed
as their principal value, with angle in [0, π].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level.Set(slog.LevelInfo)
			if verbose {
				level.Set(slog.LevelDebug)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parsed inputs")
	root.AddCommand(newConvertCmd(), newComposeCmd(), newIncrementCmd(), newExercisesCmd())
	return root
}

// vecFlag validates a vector given on the command line.
func vecFlag(name string, s []float64) (linear.V3, error) {
	v, err := rotation.Vec(s)
	if err != nil {
		return v, fmt.Errorf("--%s: %w", name, err)
	}
	slog.Debug("parsed vector", "flag", name, "value", v)
	return v, nil
}

func angleFlag(angle float64, degrees bool) float64 {
	if degrees {
		return angle * math.Pi / 180
	}
	return angle
}

func printRotation(w io.Writer, r rotation.Rotation) {
	q := r.Quaternion()
	fmt.Fprintln(w, "Quaternion:", q.WXYZ())
	printMatrix(w, "Rotation matrix:", r.Matrix())
	fmt.Fprintln(w, "Rotation vector:", r.RotationVector())
}

func printMatrix(w io.Writer, title string, m linear.M3) {
	fmt.Fprintln(w, title)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, "  [% .12f % .12f % .12f]\n", m.At(i, 0), m.At(i, 1), m.At(i, 2))
	}
}
