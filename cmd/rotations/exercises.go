// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gviegas/rotation/linear"
	"github.com/gviegas/rotation/rotation"
)

// exercise prints the solution of one large-rotation exercise.
type exercise struct {
	title string
	run   func(w io.Writer) error
}

var exercises = []exercise{
	{"Representations of a 90° rotation about z", exerciseRepresentations},
	{"Rotating a vector", exerciseApply},
	{"Composition order", exerciseCompose},
	{"Inverse rotation", exerciseInverse},
	{"Additive and multiplicative increments", exerciseIncrements},
}

func newExercisesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exercises [number]",
		Short: "Run the large-rotation exercises",
		Long: `Run the large-rotation exercises 1 to 5, or only the
given one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, last := 1, len(exercises)
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 || n > len(exercises) {
					return fmt.Errorf("exercise must be in [1, %d], have %q", len(exercises), args[0])
				}
				first, last = n, n
			}
			w := cmd.OutOrStdout()
			for i := first; i <= last; i++ {
				e := exercises[i-1]
				slog.Debug("running exercise", "number", i)
				fmt.Fprintf(w, "Exercise 1.%d: %s\n", i, e.title)
				if err := e.run(w); err != nil {
					return fmt.Errorf("exercise 1.%d: %w", i, err)
				}
				if i < last {
					fmt.Fprintln(w)
				}
			}
			return nil
		},
	}
}

func exerciseRepresentations(w io.Writer) error {
	r, err := rotation.New(linear.V3{0, 0, 1}, math.Pi/2)
	if err != nil {
		return err
	}
	printRotation(w, r)
	return nil
}

func exerciseApply(w io.Writer) error {
	r, err := rotation.New(linear.V3{0, 0, 1}, math.Pi/2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Rotated vector:", r.Apply(linear.V3{1, 0, 0}))
	return nil
}

func exerciseCompose(w io.Writer) error {
	l1, err := rotation.New(linear.V3{1, 0, 0}, math.Pi/4)
	if err != nil {
		return err
	}
	l2, err := rotation.New(linear.V3{0, 1, 0}, math.Pi/6)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Composed rotation vector:", l2.Compose(l1).RotationVector())
	fmt.Fprintln(w, "Reordered composed rotation vector:", l1.Compose(l2).RotationVector())
	return nil
}

func exerciseInverse(w io.Writer) error {
	r, err := rotation.New(linear.V3{1, 1, 0}, math.Pi/3)
	if err != nil {
		return err
	}
	inv := r.Inverse()
	fmt.Fprintln(w, "Original rotation vector:", r.RotationVector())
	fmt.Fprintln(w, "Inverse rotation vector:", inv.RotationVector())

	a := linear.V3{1, 0.2, -0.1}
	fmt.Fprintln(w, "Restored vector a:", inv.Apply(r.Apply(a)))
	printMatrix(w, "Composition 1 rotation matrix:", inv.Compose(r).Matrix())
	printMatrix(w, "Composition 2 rotation matrix:", r.Compose(inv).Matrix())
	return nil
}

func exerciseIncrements(w io.Writer) error {
	printIncrements(w, linear.V3{0.1, 0.2, 0.3}, linear.V3{0.01, -0.02, 0.03})
	return nil
}
