//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

package app

import "github.com/gavyur/solvesquare/internal/quadratic"

// Solver computes the roots for a set of validated coefficients. The seam
// exists so the driver can be tested without depending on the numeric core.
type Solver interface {
	// Solve returns the roots of the equation the coefficients describe.
	Solve(c quadratic.Coefficients) quadratic.Roots
}

// CoreSolver is the default Solver, backed by the quadratic package.
type CoreSolver struct{}

// Verify interface compliance.
var _ Solver = CoreSolver{}

// Solve implements Solver.
func (CoreSolver) Solve(c quadratic.Coefficients) quadratic.Roots {
	return c.Solve()
}
