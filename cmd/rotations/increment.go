// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gviegas/rotation/linear"
	"github.com/gviegas/rotation/rotation"
)

func newIncrementCmd() *cobra.Command {
	var psi, dpsi []float64
	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Relate additive and multiplicative rotation vector increments",
		Long: `Given a rotation vector ψ1 and an additive increment Δψ, print
ψ2 = ψ1 + Δψ, the left and right multiplicative increments Δθ and ΔΘ
such that Λ(ψ2) = Λ(Δθ)Λ(ψ1) = Λ(ψ1)Λ(ΔΘ), and the first-order
additive increment T(ψ1)⁻¹Δθ.`,
		Example: `  rotations increment --psi 0.1,0.2,0.3 --dpsi 0.01,-0.02,0.03`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := vecFlag("psi", psi)
			if err != nil {
				return err
			}
			d, err := vecFlag("dpsi", dpsi)
			if err != nil {
				return err
			}
			printIncrements(cmd.OutOrStdout(), p, d)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&psi, "psi", nil, "reference rotation vector x,y,z")
	cmd.Flags().Float64SliceVar(&dpsi, "dpsi", nil, "additive increment x,y,z")
	cmd.MarkFlagRequired("psi")
	cmd.MarkFlagRequired("dpsi")
	return cmd
}

func printIncrements(w io.Writer, psi1, dpsi linear.V3) {
	var psi2 linear.V3
	psi2.Add(&psi1, &dpsi)
	fmt.Fprintln(w, "psi_2:", psi2)

	r1, r2 := rotation.FromRotationVector(psi1), rotation.FromRotationVector(psi2)
	dtheta := rotation.LeftIncrement(r1, r2).RotationVector()
	dTheta := rotation.RightIncrement(r1, r2).RotationVector()
	fmt.Fprintln(w, "Left multiplicative increment:", dtheta)
	fmt.Fprintln(w, "Right multiplicative increment:", dTheta)
	fmt.Fprintln(w, "Left increment from the right one:", r1.Apply(dTheta))
	printMatrix(w, "Transformation matrix:", r1.TransformationMatrix())
	fmt.Fprintln(w, "Additive increment via transformation matrix:", r1.AdditiveIncrement(dtheta))
}
