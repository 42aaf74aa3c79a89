package tables

import "testing"

func TestModesPaletteRanges(t *testing.T) {
	for i, m := range Modes {
		if m.PaletteOffset1+m.PaletteSize1 > len(Weights) {
			t.Errorf("mode %d: primary palette [%d:%d] exceeds Weights (len %d)",
				i, m.PaletteOffset1, m.PaletteOffset1+m.PaletteSize1, len(Weights))
		}
		if m.HasSecondIndex() && m.PaletteOffset2+m.PaletteSize2 > len(Weights) {
			t.Errorf("mode %d: secondary palette [%d:%d] exceeds Weights (len %d)",
				i, m.PaletteOffset2, m.PaletteOffset2+m.PaletteSize2, len(Weights))
		}
		if got, want := 1<<uint(m.IndexBits1), m.PaletteSize1; got != want {
			t.Errorf("mode %d: PaletteSize1 = %d, want 1<<IndexBits1 = %d", i, m.PaletteSize1, want)
		}
		if m.NumSubsets < 1 || m.NumSubsets > 3 {
			t.Errorf("mode %d: NumSubsets = %d, want 1..3", i, m.NumSubsets)
		}
	}
}

func TestPartitionsSubsetRange(t *testing.T) {
	for ns := 1; ns <= 3; ns++ {
		for shape := 0; shape < 64; shape++ {
			for pixel := 0; pixel < 16; pixel++ {
				s := Partitions[ns-1][shape][pixel]
				if int(s) >= ns {
					t.Fatalf("Partitions[%d][%d][%d] = %d, want < %d", ns-1, shape, pixel, s, ns)
				}
			}
		}
	}
}

func TestPartitionsOneSubsetAllZero(t *testing.T) {
	for shape := 0; shape < 64; shape++ {
		for pixel := 0; pixel < 16; pixel++ {
			if Partitions[0][shape][pixel] != 0 {
				t.Fatalf("1-subset Partitions[%d][%d] = %d, want 0", shape, pixel, Partitions[0][shape][pixel])
			}
		}
	}
}

func TestAnchorsSubsetZeroIsPixelZero(t *testing.T) {
	for ns := 0; ns < 3; ns++ {
		for shape := 0; shape < 64; shape++ {
			if Anchors[ns][shape][0] != 0 {
				t.Fatalf("Anchors[%d][%d][0] = %d, want 0", ns, shape, Anchors[ns][shape][0])
			}
		}
	}
}

func TestWeightsMonotonic(t *testing.T) {
	ranges := [][2]int{{0, 4}, {4, 12}, {12, 28}}
	for _, r := range ranges {
		prev := -1
		for i := r[0]; i < r[1]; i++ {
			if int(Weights[i]) <= prev {
				t.Errorf("Weights[%d:%d] not strictly increasing at index %d", r[0], r[1], i)
			}
			prev = int(Weights[i])
		}
		if Weights[r[0]] != 0 || Weights[r[1]-1] != 64 {
			t.Errorf("Weights[%d:%d] = %v, want to start at 0 and end at 64", r[0], r[1], Weights[r[0]:r[1]])
		}
	}
}
