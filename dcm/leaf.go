package dcm

import "math"

// LeafBoundaries returns the n+1 leaf position boundaries (mm) of an
// n leaf MLC.  RTP files do not record them, so they come from known
// models: 60 leaves is the Varian Millennium layout (10 mm outer,
// 5 mm inner leaves); anything else is spread evenly over ±200 mm.
func LeafBoundaries(n int) []int {
	if n <= 0 {
		return nil
	}
	if n == 60 {
		res := make([]int, 0, 61)
		for v := -200; v < -100; v += 10 {
			res = append(res, v)
		}
		for v := -100; v < 100; v += 5 {
			res = append(res, v)
		}
		for v := 100; v <= 200; v += 10 {
			res = append(res, v)
		}
		return res
	}
	res := make([]int, n+1)
	for i := range res {
		res[i] = -200 + int(math.Round(float64(i)*400/float64(n)))
	}
	return res
}
