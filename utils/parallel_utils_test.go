package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	for _, tc := range []struct{ degree, max int }{
		{1, 7}, {3, 7}, {4, 128}, {5, 128}, {7, 7},
	} {
		pm := NewPartitionMap(tc.degree, tc.max)

		// Buckets tile [0, max) contiguously with imbalance at most one.
		var (
			covered  int
			min, max = tc.max, 0
		)
		for n := 0; n < tc.degree; n++ {
			k1, k2 := pm.GetBucketRange(n)
			if n == 0 {
				assert.Equal(t, 0, k1)
			} else {
				prev := pm.Partitions[n-1][1]
				assert.Equal(t, prev, k1)
			}
			dim := pm.GetBucketDimension(n)
			assert.Equal(t, k2-k1, dim)
			covered += dim
			if dim < min {
				min = dim
			}
			if dim > max {
				max = dim
			}
		}
		assert.Equal(t, tc.max, covered)
		assert.Equal(t, tc.max, pm.Partitions[tc.degree-1][1])
		assert.LessOrEqual(t, max-min, 1)
	}
}
