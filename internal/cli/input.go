package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

// cubeInput is the set of flags that describe a starting arrangement.
type cubeInput struct {
	degree   int
	scramble string
	facelets string
	random   int
	seed     uint64
}

func (in *cubeInput) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&in.degree, "degree", "n", 0, "Cube degree: 2, 3 or 4 (default from config)")
	cmd.Flags().StringVarP(&in.scramble, "scramble", "s", "", `Scramble notation applied to a solved cube, e.g. "R U R' U'"`)
	cmd.Flags().StringVar(&in.facelets, "facelets", "", "Facelet string: six faces in R L U D F B order, N*N color letters each")
	cmd.Flags().IntVar(&in.random, "random", 0, "Apply a random scramble of this many moves")
	cmd.Flags().Uint64Var(&in.seed, "seed", 0, "Seed for --random (default: random)")
	cmd.MarkFlagsMutuallyExclusive("scramble", "facelets", "random")
}

// resolveDegree returns the degree flag, falling back to the config.
func (in *cubeInput) resolveDegree() int {
	if in.degree != 0 {
		return in.degree
	}
	return cfg.DefaultDegree
}

// arrangement builds and validates the starting arrangement. It also
// returns the scramble applied, if any.
func (in *cubeInput) arrangement() (*nxcube.Arrangement, []nxcube.Move, error) {
	degree := in.resolveDegree()
	if degree < 1 {
		return nil, nil, fmt.Errorf("%w: %d", nxcube.ErrInvalidDegree, degree)
	}

	var (
		a        *nxcube.Arrangement
		scramble []nxcube.Move
		err      error
	)

	switch {
	case in.facelets != "":
		if a, err = nxcube.ParseFacelets(degree, in.facelets); err != nil {
			return nil, nil, err
		}
	case in.random > 0:
		seed := in.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		scramble = nxcube.Scramble(degree, in.random, seed)
		logger.Debug("random scramble", "seed", seed, "length", in.random)
		a = nxcube.NewArrangement(degree)
		a.Apply(scramble...)
	default:
		if scramble, err = nxcube.ParseMovesFor(degree, in.scramble); err != nil {
			return nil, nil, err
		}
		a = nxcube.NewArrangement(degree)
		a.Apply(scramble...)
	}

	if err := a.Validate(); err != nil {
		return nil, nil, err
	}
	return a, scramble, nil
}
