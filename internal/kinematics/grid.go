package kinematics

// Linspace returns n evenly spaced samples over [start, stop], endpoints
// included. n <= 0 yields an empty slice and n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	ts := make([]float64, n)
	if n == 1 {
		ts[0] = start
		return ts
	}
	step := (stop - start) / float64(n-1)
	for i := range ts {
		ts[i] = start + float64(i)*step
	}
	// Pin the last sample so the endpoint is exact.
	ts[n-1] = stop
	return ts
}

// TimeGrid returns n uniform samples over [0, duration]. A zero duration
// collapses to the single sample 0 since every sample would be identical.
func TimeGrid(duration float64, n int) []float64 {
	if n > 1 && duration == 0 {
		n = 1
	}
	return Linspace(0, duration, n)
}
