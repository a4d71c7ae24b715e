// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gviegas/rotation/rotation"
)

func newConvertCmd() *cobra.Command {
	var (
		axis, vector []float64
		angle        float64
		degrees      bool
		apply        []float64
	)
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Print every representation of a rotation",
		Example: `  rotations convert --axis 0,0,1 --angle 90 --degrees
  rotations convert --vector 0.1,0.2,0.3 --apply 1,0,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r rotation.Rotation
			switch {
			case cmd.Flags().Changed("vector"):
				v, err := vecFlag("vector", vector)
				if err != nil {
					return err
				}
				r = rotation.FromRotationVector(v)
			case cmd.Flags().Changed("axis"):
				a, err := vecFlag("axis", axis)
				if err != nil {
					return err
				}
				if r, err = rotation.New(a, angleFlag(angle, degrees)); err != nil {
					return err
				}
			default:
				return errors.New("one of --axis or --vector is required")
			}
			w := cmd.OutOrStdout()
			printRotation(w, r)
			if cmd.Flags().Changed("apply") {
				v, err := vecFlag("apply", apply)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, "Rotated vector:", r.Apply(v))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&axis, "axis", nil, "rotation axis x,y,z (need not be normalized)")
	f.Float64Var(&angle, "angle", 0, "rotation angle about --axis")
	f.BoolVar(&degrees, "degrees", false, "--angle is in degrees")
	f.Float64SliceVar(&vector, "vector", nil, "rotation vector x,y,z")
	f.Float64SliceVar(&apply, "apply", nil, "vector x,y,z to rotate")
	cmd.MarkFlagsMutuallyExclusive("axis", "vector")
	return cmd
}
