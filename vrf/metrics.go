package vrf

import "github.com/totient-labs/ecvrf/metrics"

var (
	metricProofOpsCounter  = metrics.LazyLoadCounterVec("proof_ops_count", []string{"op", "status"})
	metricHashToCurveTries = metrics.LazyLoadHistogram("hash_to_curve_tries", metrics.BucketTries)
)

// countProofOp tallies one engine operation by outcome.
func countProofOp(op string, err error) {
	status := "ok"
	if err != nil {
		status = "err"
	}
	metricProofOpsCounter().AddWithLabel(1, map[string]string{"op": op, "status": status})
}
