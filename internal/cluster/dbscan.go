package cluster

import "math"

// dbscan assigns every point to a cluster using density-based scanning
// over euclidean distance. With minSamples == 1 there is no noise: every
// point seeds its own cluster if nothing is within eps, so the result is
// always a complete hard partition. Points are scanned in input order,
// which keeps labels deterministic for a fixed matrix.
func dbscan(points [][]float64, eps float64, minSamples int) []int {
	const unvisited = -1

	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}

	nextLabel := 0
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}

		neighbors := regionQuery(points, i, eps)
		if len(neighbors) < minSamples {
			// Below density threshold. With minSamples <= 1 this branch
			// is unreachable since a point is always its own neighbor.
			labels[i] = nextLabel
			nextLabel++
			continue
		}

		labels[i] = nextLabel
		expandCluster(points, labels, neighbors, nextLabel, eps, minSamples)
		nextLabel++
	}

	return labels
}

// expandCluster grows a cluster outward from the seed neighborhood.
func expandCluster(points [][]float64, labels []int, seeds []int, label int, eps float64, minSamples int) {
	for k := 0; k < len(seeds); k++ {
		j := seeds[k]
		if labels[j] != -1 {
			continue
		}
		labels[j] = label

		neighbors := regionQuery(points, j, eps)
		if len(neighbors) >= minSamples {
			seeds = append(seeds, neighbors...)
		}
	}
}

// regionQuery returns the indices of all points within eps of point i,
// including i itself, in input order.
func regionQuery(points [][]float64, i int, eps float64) []int {
	var neighbors []int
	for j := range points {
		if euclidean(points[i], points[j]) <= eps {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// euclidean computes the euclidean distance between two equal-length rows.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
