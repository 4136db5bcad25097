package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRand creates a deterministic random number generator for testing.
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // weak random is fine for training tests
}

// twoBlobs returns well-separated clusters around (0,0) and (10,10).
func twoBlobs() [][]float64 {
	return [][]float64{
		{0.1, 0.2}, {-0.2, 0.1}, {0.0, -0.1}, {0.3, 0.0}, {-0.1, -0.2},
		{10.1, 10.2}, {9.8, 10.1}, {10.0, 9.9}, {10.3, 10.0}, {9.9, 9.8},
	}
}

func TestFitGaussianMixture(t *testing.T) {
	cases := []struct {
		name   string
		data   [][]float64
		k      int
		wantOK bool
	}{
		{
			name:   "empty_data",
			data:   nil,
			k:      2,
			wantOK: false,
		},
		{
			name:   "zero_components",
			data:   twoBlobs(),
			k:      0,
			wantOK: false,
		},
		{
			name:   "more_components_than_points",
			data:   [][]float64{{1, 2}, {3, 4}},
			k:      3,
			wantOK: false,
		},
		{
			name:   "two_separated_blobs",
			data:   twoBlobs(),
			k:      2,
			wantOK: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model, ok := FitGaussianMixture(tc.data, tc.k, 100, newTestRand(1))
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}

			assert.Equal(t, tc.k, model.NumComponents())

			totalWeight := float64(0)
			for _, w := range model.Weights {
				assert.Greater(t, w, 0.0)
				totalWeight += w
			}
			assert.InDelta(t, 1.0, totalWeight, 0.001)
		})
	}
}

func TestFitGaussianMixture_SeparatesBlobs(t *testing.T) {
	data := twoBlobs()
	model, ok := FitGaussianMixture(data, 2, 100, newTestRand(7))
	require.True(t, ok)

	// All points from the same blob must land in the same component,
	// and the two blobs in different components.
	lowCluster := model.Predict(data[0])
	highCluster := model.Predict(data[5])
	assert.NotEqual(t, lowCluster, highCluster)

	for i := 0; i < 5; i++ {
		assert.Equal(t, lowCluster, model.Predict(data[i]))
	}
	for i := 5; i < 10; i++ {
		assert.Equal(t, highCluster, model.Predict(data[i]))
	}
}

func TestBestGaussianMixture_PrefersTrueComponentCount(t *testing.T) {
	data := twoBlobs()
	params := Hyperparameters{KMin: 1, KMax: 4, MaxIter: 100, NInit: 5}

	_, bestK, ok := BestGaussianMixture(data, params, newTestRand(3))
	require.True(t, ok)
	assert.Equal(t, 2, bestK)
}

func TestBestGaussianMixture_EmptyData(t *testing.T) {
	params := DefaultHyperparameters()
	_, _, ok := BestGaussianMixture(nil, params, newTestRand(1))
	assert.False(t, ok)
}

func TestSortClustersAscending(t *testing.T) {
	// Cluster 0 holds the high-value points, cluster 1 the low-value ones.
	data := [][]float64{{10, 10}, {0, 0}, {10, 11}, {0, 1}}
	assignments := []int{0, 1, 0, 1}

	sorted := SortClustersAscending(data, assignments, 2)

	// After relabelling, low-mean cluster becomes 0, high-mean becomes 1.
	assert.Equal(t, []int{1, 0, 1, 0}, sorted)
}

func TestSortClustersAscending_AlreadyOrdered(t *testing.T) {
	data := [][]float64{{0, 0}, {5, 5}, {10, 10}}
	assignments := []int{0, 1, 2}

	sorted := SortClustersAscending(data, assignments, 3)
	assert.Equal(t, []int{0, 1, 2}, sorted)
}

func TestStandardizeFeatures(t *testing.T) {
	cases := []struct {
		name string
		data [][]float64
		want [][]float64
	}{
		{
			name: "empty",
			data: nil,
			want: nil,
		},
		{
			name: "constant_column_left_at_zero",
			data: [][]float64{{5, 1}, {5, 3}},
			want: [][]float64{{0, -1}, {0, 1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StandardizeFeatures(tc.data)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				for d := range tc.want[i] {
					assert.InDelta(t, tc.want[i][d], got[i][d], 0.0001)
				}
			}
		})
	}
}

func TestStandardizeFeatures_ZeroMeanUnitVariance(t *testing.T) {
	data := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}
	scaled := StandardizeFeatures(data)

	for d := 0; d < 2; d++ {
		mean := float64(0)
		for _, point := range scaled {
			mean += point[d]
		}
		mean /= float64(len(scaled))
		assert.InDelta(t, 0.0, mean, 0.0001)

		variance := float64(0)
		for _, point := range scaled {
			variance += (point[d] - mean) * (point[d] - mean)
		}
		variance /= float64(len(scaled))
		assert.InDelta(t, 1.0, variance, 0.0001)
	}
}

func TestGaussianMixture_BIC_PenalisesComplexity(t *testing.T) {
	data := twoBlobs()

	simple, ok := FitGaussianMixture(data, 2, 100, newTestRand(5))
	require.True(t, ok)
	complexModel, ok := FitGaussianMixture(data, 5, 100, newTestRand(5))
	require.True(t, ok)

	assert.Less(t, simple.BIC(len(data)), complexModel.BIC(len(data)))
}
