package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
)

var (
	scrambleDegree int
	scrambleLength int
	scrambleSeed   uint64
	scrambleNet    bool

	showInput    cubeInput
	showFacelets bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a reproducible random scramble. The same degree, length and seed
always give the same sequence.`,
	RunE: runScramble,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a cube arrangement",
	Long:  `Print the unfolded net of a cube after a scramble or from a facelet string.`,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleDegree, "degree", "n", 0, "Cube degree (default from config)")
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: random)")
	scrambleCmd.Flags().BoolVar(&scrambleNet, "net", false, "Also print the scrambled net")

	rootCmd.AddCommand(showCmd)
	showInput.register(showCmd)
	showCmd.Flags().BoolVar(&showFacelets, "facelets-out", false, "Print the facelet string instead of the net")
}

func runScramble(cmd *cobra.Command, args []string) error {
	degree := scrambleDegree
	if degree == 0 {
		degree = cfg.DefaultDegree
	}
	if degree < 2 {
		return fmt.Errorf("%w: %d", nxcube.ErrInvalidDegree, degree)
	}
	length := scrambleLength
	if length == 0 {
		length = cfg.ScrambleLength
	}
	seed := scrambleSeed
	if seed == 0 {
		seed = rand.Uint64()
	}

	moves := nxcube.Scramble(degree, length, seed)
	fmt.Println(nxcube.FormatMoves(moves))
	logger.Debug("scramble", "degree", degree, "length", length, "seed", seed)

	if scrambleNet {
		a := nxcube.NewArrangement(degree)
		a.Apply(moves...)
		fmt.Println()
		fmt.Print(render.Net(a, useColor()))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, _, err := showInput.arrangement()
	if err != nil {
		return err
	}

	if showFacelets {
		fmt.Println(a.Facelets())
		return nil
	}

	fmt.Print(render.Net(a, useColor()))
	if a.IsSolved() {
		fmt.Println(render.StatusStyle.Render("solved"))
	}
	return nil
}
