// terraingen generates landscapes without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/engine/capture"
	"github.com/Faultbox/landscape/internal/landscape"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "heightmap", "hm":
		cmdHeightmap(args)
	case "obj":
		cmdOBJ(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraingen - procedural terrain generator

Usage:
  terraingen <command> [options]

Commands:
  info                     Show mesh counts, bounds and timing
  heightmap <out.png>      Write a 16-bit grayscale heightmap
  obj <out.obj>            Export the mesh as Wavefront OBJ

Options (all commands):
  -width N -depth N        Grid cells along X and Z (default 200)
  -scale F                 World units per cell (default 10)
  -seed N                  Noise seed, 0 is the reference permutation
  -noise KIND              improved, classic or simplex
  -octaves N               Noise octaves (default 6)
  -normals MODE            up or computed

Examples:
  terraingen info -width 64 -depth 64
  terraingen heightmap -seed 7 height.png
  terraingen obj -normals computed terrain.obj`)
}

// terrainFlags registers the shared generation flags on fs.
func terrainFlags(fs *flag.FlagSet) *config.TerrainConfig {
	tc := config.Default().Terrain
	fs.IntVar(&tc.Width, "width", tc.Width, "Grid cells along X")
	fs.IntVar(&tc.Depth, "depth", tc.Depth, "Grid cells along Z")
	fs.Float64Var(&tc.Scale, "scale", tc.Scale, "World units per cell")
	fs.Int64Var(&tc.Seed, "seed", tc.Seed, "Noise seed")
	fs.StringVar(&tc.Noise, "noise", tc.Noise, "Noise source")
	fs.IntVar(&tc.Octaves, "octaves", tc.Octaves, "Noise octaves")
	fs.StringVar(&tc.Normals, "normals", tc.Normals, "Vertex normals")
	return &tc
}

func generate(tc *config.TerrainConfig) *landscape.World {
	world, err := landscape.Generate(*tc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return world
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	tc := terrainFlags(fs)
	fs.Parse(args)

	world := generate(tc)
	mesh := world.Mesh
	lo, hi := world.Heightfield.Range()
	ex, ez := world.Extent()

	fmt.Printf("Grid:      %d x %d cells (scale %g)\n", tc.Width, tc.Depth, tc.Scale)
	fmt.Printf("Noise:     %s, seed %d, %d octaves\n", world.Kind, tc.Seed, tc.Octaves)
	fmt.Printf("Vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("Indices:   %d (%d triangles)\n", len(mesh.Indices), len(mesh.Indices)/3)
	fmt.Printf("Normals:   %s\n", mesh.Normals)
	fmt.Printf("Extent:    %.1f x %.1f\n", ex, ez)
	fmt.Printf("Height:    %.3f .. %.3f\n", lo, hi)
	fmt.Printf("Bounds:    min %v max %v\n", mesh.Bounds.Min, mesh.Bounds.Max)
	fmt.Printf("Generated: %v\n", world.Elapsed)
}

func cmdHeightmap(args []string) {
	fs := flag.NewFlagSet("heightmap", flag.ExitOnError)
	tc := terrainFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraingen heightmap [options] <out.png>")
		os.Exit(1)
	}

	world := generate(tc)
	if err := capture.SaveHeightmapPNG(fs.Arg(0), world.Heightfield); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", fs.Arg(0), tc.Width+1, tc.Depth+1)
}

func cmdOBJ(args []string) {
	fs := flag.NewFlagSet("obj", flag.ExitOnError)
	tc := terrainFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraingen obj [options] <out.obj>")
		os.Exit(1)
	}

	world := generate(tc)
	if err := capture.SaveOBJ(fs.Arg(0), world.Mesh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d vertices, %d triangles)\n",
		fs.Arg(0), len(world.Mesh.Vertices), len(world.Mesh.Indices)/3)
}
