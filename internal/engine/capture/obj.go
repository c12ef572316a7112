package capture

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/landscape/internal/engine/terrain"
)

// WriteOBJ writes a mesh as Wavefront OBJ with positions, normals and
// texture coordinates. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, mesh *terrain.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# landscape %dx%d, %d vertices, %d triangles\n",
		mesh.Width, mesh.Depth, len(mesh.Vertices), len(mesh.Indices)/3)
	fmt.Fprintln(bw, "o terrain")

	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// SaveOBJ writes a mesh to an OBJ file at path.
func SaveOBJ(path string, mesh *terrain.Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := WriteOBJ(file, mesh); err != nil {
		file.Close()
		return fmt.Errorf("writing OBJ: %w", err)
	}
	return file.Close()
}
