package extract

import (
	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/dom"
)

// maxStride is the traversal distance adjacent cluster members may be
// apart before the stride penalty starts accruing.
const maxStride = 3

// topTotalingCluster finds the contiguous run of candidates (in document
// order) that maximizes total score minus the pairwise traversal cost
// between adjacent members, and returns its nodes. With no candidates it
// returns nil.
//
// The maximum-net-total run is found with a single Kadane-style scan:
// extending a run from one candidate to the next is worth the next node's
// score minus the traversal cost between them. Ties break toward the
// earliest run, keeping the result deterministic.
func topTotalingCluster(candidates []*Node, coeffs sift.Coefficients) []*Node {
	if len(candidates) == 0 {
		return nil
	}

	bestStart, bestEnd := 0, 0
	bestTotal := candidates[0].Score(Paragraphish)

	runStart := 0
	runTotal := bestTotal
	for i := 1; i < len(candidates); i++ {
		score := candidates[i].Score(Paragraphish)
		extended := runTotal + score - traversalCost(candidates[i-1], candidates[i], coeffs)
		if score > extended {
			runStart, runTotal = i, score
		} else {
			runTotal = extended
		}
		if runTotal > bestTotal {
			bestStart, bestEnd, bestTotal = runStart, i, runTotal
		}
	}

	return candidates[bestStart : bestEnd+1]
}

// traversalCost is the weighted cost of bridging two adjacent cluster
// members: their depth difference, whether their tags match, and a
// splitting penalty once the tree path between them exceeds maxStride.
func traversalCost(a, b *Node, coeffs sift.Coefficients) float64 {
	cost := float64(abs(a.Depth-b.Depth)) * coeffs.DifferentDepthCost

	if a.Tag == b.Tag {
		cost += coeffs.SameTagCost
	} else {
		cost += coeffs.DifferentTagCost
	}

	if stride := dom.TreeDistance(a.El, b.El) - maxStride; stride > 0 {
		cost += float64(stride) * coeffs.StrideCost
	}

	return cost
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
