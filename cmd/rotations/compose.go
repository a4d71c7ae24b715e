// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gviegas/rotation/rotation"
)

func newComposeCmd() *cobra.Command {
	var first, second []float64
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose two rotations given as rotation vectors",
		Long: `Compose two rotations given as rotation vectors, applying
--first and then --second, and compare with the reverse order.`,
		Example: `  rotations compose --first 0.785398,0,0 --second 0,0.523599,0`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v1, err := vecFlag("first", first)
			if err != nil {
				return err
			}
			v2, err := vecFlag("second", second)
			if err != nil {
				return err
			}
			r1, r2 := rotation.FromRotationVector(v1), rotation.FromRotationVector(v2)
			c := r2.Compose(r1)
			w := cmd.OutOrStdout()
			printRotation(w, c)
			fmt.Fprintln(w, "Reordered rotation vector:", r1.Compose(r2).RotationVector())
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&first, "first", nil, "rotation vector x,y,z applied first")
	cmd.Flags().Float64SliceVar(&second, "second", nil, "rotation vector x,y,z applied second")
	cmd.MarkFlagRequired("first")
	cmd.MarkFlagRequired("second")
	return cmd
}
