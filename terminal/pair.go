package terminal

// PairID identifies a registered foreground/background combination
type PairID int16

// DefaultPair is reserved by the driver for its default colors and is never
// produced by EncodePair
const DefaultPair PairID = 0

// PairCount is the number of encodable pairs
const PairCount = ColorCount * ColorCount

// Pair is a foreground/background combination
type Pair struct {
	Fg Color
	Bg Color
}

// ID returns the encoded pair id
func (p Pair) ID() PairID {
	return EncodePair(p.Fg, p.Bg)
}

// EncodePair maps (fg, bg) to 1 + 8*fg + bg, covering [1,64]
func EncodePair(fg, bg Color) PairID {
	return PairID(1 + ColorCount*ColorIndex(fg) + ColorIndex(bg))
}

// DecodePair is the inverse of EncodePair. It reports false for the default
// pair and anything outside [1,64].
func DecodePair(id PairID) (fg, bg Color, ok bool) {
	if id < 1 || id > PairCount {
		return 0, 0, false
	}
	n := int(id - 1)
	fg, _ = IndexToColor(n / ColorCount)
	bg, _ = IndexToColor(n % ColorCount)
	return fg, bg, true
}

// AllPairs returns every pair in ascending id order
func AllPairs() []Pair {
	pairs := make([]Pair, 0, PairCount)
	for _, fg := range Colors {
		for _, bg := range Colors {
			pairs = append(pairs, Pair{Fg: fg, Bg: bg})
		}
	}
	return pairs
}
