// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/matrix"
)

// informational reports a singular factorization without failing the command:
// LU and LQ still return usable factors in that case.
func (a *app) informational(err error) error {
	if err == nil || !errors.Is(err, linalg.ErrSingular) {
		return err
	}
	a.log.Warn().Err(err).Msg("factor is exactly singular")
	fmt.Fprintln(a.out, "singular: true")
	return nil
}

func (a *app) denseArg(args []string) (*matrix.Dense, error) {
	doc, err := a.load(args)
	if err != nil {
		return nil, err
	}
	return doc.Dense()
}

func (a *app) qrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qr FILE",
		Short: "QR factorization M = Q*R",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.denseArg(args)
			if err != nil {
				return err
			}
			f, err := a.engine.QR(m)
			if err != nil {
				return err
			}
			q, err := f.Q()
			if err != nil {
				return err
			}
			r, err := f.R()
			if err != nil {
				return err
			}
			a.printDense("Q", q)
			a.printDense("R", r)
			return nil
		},
	}
}

func (a *app) lqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lq FILE",
		Short: "LQ factorization M = L*Q",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.denseArg(args)
			if err != nil {
				return err
			}
			f, ferr := a.engine.LQ(m)
			if f == nil {
				return ferr
			}
			l, err := f.L()
			if err != nil {
				return err
			}
			q, err := f.Q()
			if err != nil {
				return err
			}
			a.printDense("L", l)
			a.printDense("Q", q)
			return a.informational(ferr)
		},
	}
}

func (a *app) luCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lu FILE",
		Short: "LU factorization with partial pivoting, P*M = L*U",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.denseArg(args)
			if err != nil {
				return err
			}
			f, ferr := a.engine.LU(m)
			if f == nil {
				return ferr
			}
			l, err := f.L()
			if err != nil {
				return err
			}
			u, err := f.U()
			if err != nil {
				return err
			}
			a.printDense("L", l)
			a.printDense("U", u)
			a.printInts("pivots", f.Pivots())
			return a.informational(ferr)
		},
	}
}
