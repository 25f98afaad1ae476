package predicate

// Predicate ids mirror LLVM's CmpInst predicate numbering, since the
// instrumentation hook receives a raw cmpId straight from the compiler
// pass that lives outside this module's scope.
const (
	FCMPFalse Predicate = 0
	FCMPOeq   Predicate = 1
	FCMPOgt   Predicate = 2
	FCMPOge   Predicate = 3
	FCMPOlt   Predicate = 4
	FCMPOle   Predicate = 5
	FCMPOne   Predicate = 6
	FCMPOrd   Predicate = 7
	FCMPUno   Predicate = 8
	FCMPUeq   Predicate = 9
	FCMPUgt   Predicate = 10
	FCMPUge   Predicate = 11
	FCMPUlt   Predicate = 12
	FCMPUle   Predicate = 13
	FCMPUne   Predicate = 14
	FCMPTrue  Predicate = 15

	ICMPEq  Predicate = 32
	ICMPNe  Predicate = 33
	ICMPUgt Predicate = 34
	ICMPUge Predicate = 35
	ICMPUlt Predicate = 36
	ICMPUle Predicate = 37
	ICMPSgt Predicate = 38
	ICMPSge Predicate = 39
	ICMPSlt Predicate = 40
	ICMPSle Predicate = 41
)

// Numeric constants from the driver contract. Kept here rather
// than in a separate "config" package because they are exclusively
// consumed by predicate evaluation and gradient scoring, which are both
// pure-numeric concerns.
const (
	Eps              = 1e-10
	CannotCmpPenalty = 1e6
	InitialR         = 1e12
	GradientReward   = 1e12
	MaxExits         = 100000
)

// Predicate identifies a comparison kind using LLVM CmpInst numbering.
type Predicate int32
