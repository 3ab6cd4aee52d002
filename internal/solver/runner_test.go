package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner("/opt/solvers/bsg_clp")
	assert.Equal(t, "/opt/solvers/bsg_clp", r.SolverPath)
	assert.Equal(t, "BR", r.Format)
	assert.Equal(t, 5, r.TimeLimit)
	assert.Equal(t, 5, r.Verbose)
}

func TestSolveWithoutBinary(t *testing.T) {
	r := NewRunner("")
	_, err := r.Solve("instances.txt", 0)
	assert.Error(t, err)
}

func TestSolveMissingBinary(t *testing.T) {
	r := NewRunner("/nonexistent/solver-binary")
	_, err := r.Solve("instances.txt", 0)
	assert.Error(t, err)
}
