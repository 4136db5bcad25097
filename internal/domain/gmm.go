package domain

import (
	"math"
	"math/rand/v2"
)

// gmmConvergenceThreshold is the minimum log-likelihood improvement per EM
// iteration to keep iterating.
const gmmConvergenceThreshold = 1e-4

// varianceFloor keeps component variances strictly positive.
const varianceFloor = 1e-6

// GaussianMixture is a fitted diagonal-covariance mixture model.
type GaussianMixture struct {
	Weights       []float64
	Means         [][]float64
	Variances     [][]float64
	LogLikelihood float64
}

// NumComponents returns the number of mixture components.
func (m GaussianMixture) NumComponents() int {
	return len(m.Weights)
}

// BIC returns the Bayesian information criterion of the model for a dataset
// of n points. Lower is better.
func (m GaussianMixture) BIC(n int) float64 {
	k := len(m.Weights)
	if k == 0 || n == 0 {
		return math.Inf(1)
	}
	d := len(m.Means[0])
	// Free parameters: k-1 mixture weights, k*d means, k*d diagonal variances.
	params := float64(k-1) + 2*float64(k*d)
	return -2*m.LogLikelihood + params*math.Log(float64(n))
}

// Predict assigns a point to its most likely component.
func (m GaussianMixture) Predict(point []float64) int {
	best := 0
	bestLogProb := math.Inf(-1)
	for j := range m.Weights {
		logProb := math.Log(m.Weights[j]) + logGaussianDiag(point, m.Means[j], m.Variances[j])
		if logProb > bestLogProb {
			bestLogProb = logProb
			best = j
		}
	}
	return best
}

// FitGaussianMixture fits a k-component diagonal-covariance mixture to data by
// expectation-maximization. Means are seeded with k-means++; variances start
// at the per-feature dataset variance. Returns false if data is empty or k
// exceeds the number of points.
func FitGaussianMixture(data [][]float64, k, maxIter int, rng *rand.Rand) (GaussianMixture, bool) {
	n := len(data)
	if n == 0 || k == 0 || k > n {
		return GaussianMixture{}, false
	}
	dim := len(data[0])

	model := initialModel(data, k, rng)
	resp := make([][]float64, n)
	for i := range resp {
		resp[i] = make([]float64, k)
	}

	prevLogLikelihood := math.Inf(-1)
	for iter := 0; iter < maxIter; iter++ {
		logLikelihood := expectationStep(data, model, resp)
		maximizationStep(data, model, resp, dim)

		model.LogLikelihood = logLikelihood
		if logLikelihood-prevLogLikelihood < gmmConvergenceThreshold {
			break
		}
		prevLogLikelihood = logLikelihood
	}

	return model, true
}

// BestGaussianMixture fits mixtures for every k in [params.KMin, params.KMax],
// with params.NInit random restarts per k, and returns the model with the
// lowest BIC together with its component count. Returns false if no model
// could be fitted.
func BestGaussianMixture(data [][]float64, params Hyperparameters, rng *rand.Rand) (GaussianMixture, int, bool) {
	var best GaussianMixture
	bestK := 0
	bestBIC := math.Inf(1)

	for k := params.KMin; k <= params.KMax; k++ {
		for init := 0; init < params.NInit; init++ {
			model, ok := FitGaussianMixture(data, k, params.MaxIter, rng)
			if !ok {
				continue
			}
			if bic := model.BIC(len(data)); bic < bestBIC {
				bestBIC = bic
				best = model
				bestK = k
			}
		}
	}

	return best, bestK, bestK > 0
}

// expectationStep fills resp with posterior component responsibilities and
// returns the data log-likelihood under the current model.
func expectationStep(data [][]float64, model GaussianMixture, resp [][]float64) float64 {
	k := len(model.Weights)
	logLikelihood := float64(0)
	logProbs := make([]float64, k)

	for i, point := range data {
		for j := 0; j < k; j++ {
			logProbs[j] = math.Log(model.Weights[j]) +
				logGaussianDiag(point, model.Means[j], model.Variances[j])
		}
		total := logSumExp(logProbs)
		logLikelihood += total
		for j := 0; j < k; j++ {
			resp[i][j] = math.Exp(logProbs[j] - total)
		}
	}

	return logLikelihood
}

// maximizationStep re-estimates weights, means, and variances from the
// responsibilities.
func maximizationStep(data [][]float64, model GaussianMixture, resp [][]float64, dim int) {
	n := len(data)
	k := len(model.Weights)

	for j := 0; j < k; j++ {
		total := float64(0)
		for i := 0; i < n; i++ {
			total += resp[i][j]
		}
		if total == 0 {
			// Dead component, leave it where it is.
			continue
		}

		model.Weights[j] = total / float64(n)

		for d := 0; d < dim; d++ {
			mean := float64(0)
			for i := 0; i < n; i++ {
				mean += resp[i][j] * data[i][d]
			}
			mean /= total
			model.Means[j][d] = mean

			variance := float64(0)
			for i := 0; i < n; i++ {
				dev := data[i][d] - mean
				variance += resp[i][j] * dev * dev
			}
			variance /= total
			if variance < varianceFloor {
				variance = varianceFloor
			}
			model.Variances[j][d] = variance
		}
	}
}

// initialModel seeds a mixture with k-means++ means, uniform weights, and the
// per-feature dataset variance.
func initialModel(data [][]float64, k int, rng *rand.Rand) GaussianMixture {
	dim := len(data[0])

	datasetVariance := make([]float64, dim)
	for d := 0; d < dim; d++ {
		mean := float64(0)
		for _, point := range data {
			mean += point[d]
		}
		mean /= float64(len(data))

		variance := float64(0)
		for _, point := range data {
			dev := point[d] - mean
			variance += dev * dev
		}
		variance /= float64(len(data))
		if variance < varianceFloor {
			variance = varianceFloor
		}
		datasetVariance[d] = variance
	}

	means := initializeMeansKMeansPlusPlus(data, k, rng)

	weights := make([]float64, k)
	variances := make([][]float64, k)
	for j := 0; j < k; j++ {
		weights[j] = 1 / float64(k)
		variances[j] = make([]float64, dim)
		copy(variances[j], datasetVariance)
	}

	return GaussianMixture{
		Weights:   weights,
		Means:     means,
		Variances: variances,
	}
}

// initializeMeansKMeansPlusPlus picks k starting means, choosing each
// subsequent mean with probability proportional to its squared distance from
// the nearest already-chosen mean.
func initializeMeansKMeansPlusPlus(data [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(data)
	dim := len(data[0])
	means := make([][]float64, k)

	firstIdx := rng.IntN(n)
	means[0] = make([]float64, dim)
	copy(means[0], data[firstIdx])

	distances := make([]float64, n)
	for j := 1; j < k; j++ {
		totalDist := float64(0)
		for i, point := range data {
			minDist := math.MaxFloat64
			for m := 0; m < j; m++ {
				if dist := squaredDistance(point, means[m]); dist < minDist {
					minDist = dist
				}
			}
			distances[i] = minDist
			totalDist += minDist
		}

		target := rng.Float64() * totalDist
		cumulative := float64(0)
		chosenIdx := 0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				chosenIdx = i
				break
			}
		}

		means[j] = make([]float64, dim)
		copy(means[j], data[chosenIdx])
	}

	return means
}

// SortClustersAscending relabels cluster assignments so that clusters are
// numbered in ascending order of the mean value of their members. The highest
// label therefore marks the highest-mean (highest-risk) cluster.
func SortClustersAscending(data [][]float64, assignments []int, k int) []int {
	sums := make([]float64, k)
	counts := make([]float64, k)
	for i, cluster := range assignments {
		counts[cluster] += float64(len(data[i]))
		for _, v := range data[i] {
			sums[cluster] += v
		}
	}

	means := make([]float64, k)
	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			means[j] = sums[j] / counts[j]
		}
	}

	// Rank clusters by mean, smallest first.
	order := make([]int, k)
	for j := range order {
		order[j] = j
	}
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if means[order[b]] < means[order[a]] {
				order[a], order[b] = order[b], order[a]
			}
		}
	}

	relabel := make([]int, k)
	for newLabel, oldLabel := range order {
		relabel[oldLabel] = newLabel
	}

	result := make([]int, len(assignments))
	for i, cluster := range assignments {
		result[i] = relabel[cluster]
	}
	return result
}

// StandardizeFeatures z-scores each feature column of data. Constant columns
// are left at zero.
func StandardizeFeatures(data [][]float64) [][]float64 {
	if len(data) == 0 {
		return nil
	}
	n := len(data)
	dim := len(data[0])

	means := make([]float64, dim)
	for _, point := range data {
		for d, v := range point {
			means[d] += v
		}
	}
	for d := range means {
		means[d] /= float64(n)
	}

	stddevs := make([]float64, dim)
	for _, point := range data {
		for d, v := range point {
			dev := v - means[d]
			stddevs[d] += dev * dev
		}
	}
	for d := range stddevs {
		stddevs[d] = math.Sqrt(stddevs[d] / float64(n))
	}

	scaled := make([][]float64, n)
	for i, point := range data {
		scaled[i] = make([]float64, dim)
		for d, v := range point {
			if stddevs[d] > 0 {
				scaled[i][d] = (v - means[d]) / stddevs[d]
			}
		}
	}
	return scaled
}

// logGaussianDiag is the log density of a diagonal-covariance Gaussian.
func logGaussianDiag(point, mean, variance []float64) float64 {
	logProb := float64(0)
	for d := range point {
		dev := point[d] - mean[d]
		logProb += -0.5 * (math.Log(2*math.Pi*variance[d]) + dev*dev/variance[d])
	}
	return logProb
}

// logSumExp computes log(sum(exp(xs))) without overflow.
func logSumExp(xs []float64) float64 {
	maxVal := math.Inf(-1)
	for _, x := range xs {
		if x > maxVal {
			maxVal = x
		}
	}
	if math.IsInf(maxVal, -1) {
		return maxVal
	}

	sum := float64(0)
	for _, x := range xs {
		sum += math.Exp(x - maxVal)
	}
	return maxVal + math.Log(sum)
}

func squaredDistance(a, b []float64) float64 {
	total := float64(0)
	for i := range a {
		dev := a[i] - b[i]
		total += dev * dev
	}
	return total
}
