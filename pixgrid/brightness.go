package pixgrid

// BT.709 luma weights. Their float64 sum is exactly 1.0, so weighting
// channels already normalized to [0,1] keeps an all-white grid at
// exactly 1.0; weighting raw 0..255 channels first would drift an ulp.
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
)

const maxChannel = 255.0

// Brightness returns the weighted grayscale average of g in [0,1].
// All-black yields exactly 0.0, all-white exactly 1.0.
func Brightness(g Grid) float64 {
	var sum float64
	for _, p := range g.pix {
		sum += redWeight*(float64(p.R)/maxChannel) +
			greenWeight*(float64(p.G)/maxChannel) +
			blueWeight*(float64(p.B)/maxChannel)
	}
	return sum / float64(len(g.pix))
}
