// nxcube - scramble, solve and replay NxN cubes from the terminal.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
