package capture

import (
	"image"
	"image/color"
	"math"

	"github.com/Faultbox/landscape/internal/engine/terrain"
)

// HeightmapImage renders a heightfield as 16-bit grayscale, normalised so the
// lowest sample is black and the highest white. Row z of the image is grid
// row z. A flat field renders mid-grey.
func HeightmapImage(hf *terrain.Heightfield) *image.Gray16 {
	w, d := hf.Width+1, hf.Depth+1
	img := image.NewGray16(image.Rect(0, 0, w, d))

	lo, hi := hf.Range()
	span := float64(hi) - float64(lo)

	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			v := uint16(math.MaxUint16 / 2)
			if span > 0 {
				t := (float64(hf.At(x, z)) - float64(lo)) / span
				v = uint16(math.Round(t * math.MaxUint16))
			}
			img.SetGray16(x, z, color.Gray16{Y: v})
		}
	}
	return img
}

// SaveHeightmapPNG writes HeightmapImage(hf) to path.
func SaveHeightmapPNG(path string, hf *terrain.Heightfield) error {
	return savePNG(path, HeightmapImage(hf))
}
