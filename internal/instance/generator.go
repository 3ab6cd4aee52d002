// Package instance generates and serializes container loading problem
// instances in the classic BR-style text format.
package instance

import (
	"math/rand"

	"github.com/piwi3910/CubeStow/internal/model"
)

// Standard container dimensions shared by all generated instances.
const (
	ContainerL = 587
	ContainerW = 233
	ContainerH = 220
)

// Per-axis box dimension ranges.
var (
	lowBound   = [3]int{30, 25, 20}
	upperBound = [3]int{120, 100, 80}
)

// stabilityRatio bounds how elongated an axis may be relative to the
// box's smallest dimension before standing it upright is disallowed.
const stabilityRatio = 2.0

// GenerateOptions parameterizes instance generation.
type GenerateOptions struct {
	Types       int   // Number of distinct box types per instance
	Instances   int   // Number of instances to generate
	InitialSeed int64 // Seed for the first instance; advances +100 per instance
}

// DefaultGenerateOptions mirrors the standard benchmark setup.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Types: 10, Instances: 1, InitialSeed: 40}
}

// Generate produces reproducible instances: box dimensions are drawn
// uniformly per axis, an axis may stand vertical only when it is less
// than twice the smallest dimension, and quantities are topped up by
// random increments while the total cargo volume still fits the
// container. The seed advances by 100 between instances.
func Generate(opts GenerateOptions) []model.Instance {
	if opts.Types <= 0 {
		opts.Types = 10
	}
	if opts.Instances <= 0 {
		opts.Instances = 1
	}

	containerVolume := ContainerL * ContainerW * ContainerH
	out := make([]model.Instance, 0, opts.Instances)
	seed := opts.InitialSeed

	for i := 0; i < opts.Instances; i++ {
		rng := rand.New(rand.NewSource(seed))

		dims := make([][3]int, opts.Types)
		quantities := make([]int, opts.Types)
		volumes := make([]int, opts.Types)
		rotations := make([][3]bool, opts.Types)

		for t := 0; t < opts.Types; t++ {
			for j := 0; j < 3; j++ {
				span := upperBound[j] - lowBound[j] + 1
				r := lowBound[j] + rng.Intn(span)
				dims[t][j] = lowBound[j] + r%span
			}
			quantities[t] = 1
			volumes[t] = dims[t][0] * dims[t][1] * dims[t][2]

			minDim := dims[t][0]
			for j := 1; j < 3; j++ {
				if dims[t][j] < minDim {
					minDim = dims[t][j]
				}
			}
			for j := 0; j < 3; j++ {
				rotations[t][j] = float64(dims[t][j])/float64(minDim) < stabilityRatio
			}
		}

		// Top up quantities while the cargo still fits the container.
		for {
			cargo := 0
			for t := 0; t < opts.Types; t++ {
				cargo += quantities[t] * volumes[t]
			}
			pick := rng.Intn(opts.Types)
			if containerVolume > cargo+volumes[pick] {
				quantities[pick]++
			} else {
				break
			}
		}

		boxes := make([]model.BoxQuantity, opts.Types)
		for t := 0; t < opts.Types; t++ {
			boxes[t] = model.BoxQuantity{
				Type: model.BoxType{
					ID: t + 1,
					L:  dims[t][0], W: dims[t][1], H: dims[t][2],
					RotL: rotations[t][0], RotW: rotations[t][1], RotH: rotations[t][2],
					Weight: 1,
				},
				Quantity: quantities[t],
			}
		}

		out = append(out, model.Instance{
			ID:   i + 1,
			Seed: seed,
			L:    ContainerL, W: ContainerW, H: ContainerH,
			Boxes: boxes,
		})
		seed += 100
	}
	return out
}
