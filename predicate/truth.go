package predicate

import "math"

// Truth evaluates a comparison to its boolean outcome, with NaN-aware
// semantics matching LLVM's ordered/unordered floating-point predicates.
// Signed and unsigned integer predicates are evaluated identically, since
// the caller has already promoted integer operands to float64 before
// calling into the instrumentation hook.
//
// Any predicate id outside the known set defaults to false, matching the
// source the "self_mode" reference this was ported from (an unknown
// predicate must never be allowed to crash the hook).
func Truth(lhs, rhs float64, pred Predicate) bool {
	nan := math.IsNaN(lhs) || math.IsNaN(rhs)
	switch pred {
	case FCMPFalse:
		return false
	case FCMPTrue:
		return true
	case ICMPEq:
		return lhs == rhs
	case FCMPOeq:
		return !nan && lhs == rhs
	case FCMPUeq:
		return nan || lhs == rhs
	case ICMPNe:
		return lhs != rhs
	case FCMPOne:
		return !nan && lhs != rhs
	case FCMPUne:
		return nan || lhs != rhs
	case ICMPSgt, ICMPUgt:
		return lhs > rhs
	case FCMPOgt:
		return !nan && lhs > rhs
	case FCMPUgt:
		return nan || lhs > rhs
	case ICMPSge, ICMPUge:
		return lhs >= rhs
	case FCMPOge:
		return !nan && lhs >= rhs
	case FCMPUge:
		return nan || lhs >= rhs
	case ICMPSlt, ICMPUlt:
		return lhs < rhs
	case FCMPOlt:
		return !nan && lhs < rhs
	case FCMPUlt:
		return nan || lhs < rhs
	case ICMPSle, ICMPUle:
		return lhs <= rhs
	case FCMPOle:
		return !nan && lhs <= rhs
	case FCMPUle:
		return nan || lhs <= rhs
	case FCMPOrd:
		return !nan
	case FCMPUno:
		return nan
	default:
		return false
	}
}
