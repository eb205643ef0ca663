package flood

import "math"

// RuleDistance propagates the value of the nearest filled neighbor,
// breaking ties by smallest neighbor distance, mirroring ff_rule_distance.
func RuleDistance(ctx RuleContext) (value, priority float64, ok bool) {
	best := ctx.Neighbors[0]
	for _, n := range ctx.Neighbors[1:] {
		if n.Distance < best.Distance {
			best = n
		}
	}
	return best.Value, best.Distance, true
}

// RuleChamfer is an alias of RuleDistance, mirroring ff_rule_chamfer.
var RuleChamfer = RuleDistance

// RuleWeightedAvg inverse-distance weights the filled neighbors,
// mirroring ff_rule_weighted_avg.
func RuleWeightedAvg(ctx RuleContext) (value, priority float64, ok bool) {
	var sumW, sumV, minDist float64
	minDist = math.Inf(1)
	for _, n := range ctx.Neighbors {
		w := 1.0
		if n.Distance > 0 {
			w = 1.0 / n.Distance
		}
		sumW += w
		sumV += w * n.Value
		if n.Distance < minDist {
			minDist = n.Distance
		}
	}
	if sumW == 0 {
		return 0, 0, false
	}
	return sumV / sumW, minDist, true
}

// RuleMin fills with the smallest neighbor value, mirroring ff_rule_min.
func RuleMin(ctx RuleContext) (value, priority float64, ok bool) {
	best := ctx.Neighbors[0]
	for _, n := range ctx.Neighbors[1:] {
		if n.Value < best.Value {
			best = n
		}
	}
	return best.Value, best.Distance, true
}

// RuleMax fills with the largest neighbor value, mirroring ff_rule_max.
func RuleMax(ctx RuleContext) (value, priority float64, ok bool) {
	best := ctx.Neighbors[0]
	for _, n := range ctx.Neighbors[1:] {
		if n.Value > best.Value {
			best = n
		}
	}
	return best.Value, best.Distance, true
}

// RuleAverage fills with the unweighted mean of filled neighbors,
// mirroring ff_rule_average.
func RuleAverage(ctx RuleContext) (value, priority float64, ok bool) {
	var sum, minDist float64
	minDist = math.Inf(1)
	for _, n := range ctx.Neighbors {
		sum += n.Value
		if n.Distance < minDist {
			minDist = n.Distance
		}
	}
	return sum / float64(len(ctx.Neighbors)), minDist, true
}
