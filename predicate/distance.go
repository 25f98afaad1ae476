package predicate

import "math"

// Distance measures how far lhs/rhs are from making the comparison evaluate
// to targetTruth.
//
//   - If currentTruth != targetTruth, the comparison has not yet flipped to
//     the desired outcome: the return value is a positive distance, larger
//     meaning further from flipping.
//   - If currentTruth == targetTruth and selfMode, the condition is already
//     satisfied for the purposes of self-mode tracking (which only cares
//     about the first unmet prefix condition), so the result is 0.
//   - If currentTruth == targetTruth and not selfMode, the comparison is
//     already on the desired side: the result is a non-positive "safety
//     margin" — the negation of the corresponding positive distance — whose
//     magnitude is how far inside the satisfying region the operands lie.
//
// In the first case, pathological operands (NaN/Inf) under any predicate
// other than FCMPOrd/FCMPUno, and FCMPOrd/FCMPUno themselves, report
// CannotCmpPenalty; FCMPFalse reports CannotCmpPenalty for targetTruth
// true and 0 otherwise, and FCMPTrue the mirror image. In the third case
// pathological operands and all four trivial predicates (FCMPFalse,
// FCMPTrue, FCMPOrd, FCMPUno) report -1.
func Distance(lhs, rhs float64, pred Predicate, currentTruth, targetTruth, selfMode bool) float64 {
	if currentTruth != targetTruth {
		return unmetDistance(lhs, rhs, pred, targetTruth)
	}
	if selfMode {
		return 0
	}
	return safetyMargin(lhs, rhs, pred, targetTruth)
}

func unmetDistance(lhs, rhs float64, pred Predicate, targetTruth bool) float64 {
	if isPathological(lhs, rhs) && pred != FCMPOrd && pred != FCMPUno {
		return CannotCmpPenalty
	}
	switch pred {
	case FCMPFalse:
		if targetTruth {
			return CannotCmpPenalty
		}
		return 0
	case FCMPTrue:
		if targetTruth {
			return 0
		}
		return CannotCmpPenalty
	case ICMPEq, FCMPOeq, FCMPUeq:
		if targetTruth {
			return math.Abs(lhs - rhs)
		}
		return Eps
	case ICMPNe, FCMPOne, FCMPUne:
		if targetTruth {
			return Eps
		}
		return math.Abs(lhs - rhs)
	case ICMPSgt, ICMPUgt, FCMPOgt, FCMPUgt:
		if targetTruth {
			return rhs - lhs + Eps
		}
		return lhs - rhs
	case ICMPSge, ICMPUge, FCMPOge, FCMPUge:
		if targetTruth {
			return rhs - lhs
		}
		return lhs - rhs + Eps
	case ICMPSlt, ICMPUlt, FCMPOlt, FCMPUlt:
		if targetTruth {
			return lhs - rhs + Eps
		}
		return rhs - lhs
	case ICMPSle, ICMPUle, FCMPOle, FCMPUle:
		if targetTruth {
			return lhs - rhs
		}
		return rhs - lhs + Eps
	case FCMPOrd, FCMPUno:
		return CannotCmpPenalty
	default:
		return CannotCmpPenalty
	}
}

func safetyMargin(lhs, rhs float64, pred Predicate, targetTruth bool) float64 {
	if pred == FCMPFalse || pred == FCMPTrue || pred == FCMPOrd || pred == FCMPUno {
		return -1
	}
	if isPathological(lhs, rhs) {
		return -1
	}
	switch pred {
	case ICMPEq, FCMPOeq, FCMPUeq:
		if targetTruth {
			return 0
		}
		return -(math.Abs(lhs-rhs) - Eps)
	case ICMPNe, FCMPOne, FCMPUne:
		if targetTruth {
			return -(math.Abs(lhs-rhs) - Eps)
		}
		return 0
	case ICMPSgt, ICMPUgt, FCMPOgt, FCMPUgt:
		if targetTruth {
			return -(lhs - rhs - Eps)
		}
		return -(rhs - lhs)
	case ICMPSge, ICMPUge, FCMPOge, FCMPUge:
		if targetTruth {
			return -(lhs - rhs)
		}
		return -(rhs - lhs - Eps)
	case ICMPSlt, ICMPUlt, FCMPOlt, FCMPUlt:
		if targetTruth {
			return -(rhs - lhs - Eps)
		}
		return -(lhs - rhs)
	case ICMPSle, ICMPUle, FCMPOle, FCMPUle:
		if targetTruth {
			return -(rhs - lhs)
		}
		return -(lhs - rhs - Eps)
	default:
		return -1
	}
}

func isPathological(lhs, rhs float64) bool {
	return math.IsNaN(lhs) || math.IsNaN(rhs) || math.IsInf(lhs, 0) || math.IsInf(rhs, 0)
}
