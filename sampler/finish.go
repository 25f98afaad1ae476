package sampler

// Flag bits returned by FinishSample.
const (
	// FlagNewCoverage is set when this sample covered at least one exit
	// never previously explored.
	FlagNewCoverage = 1 << iota
	// FlagTargetCovered is set when Target() is in the explored set.
	FlagTargetCovered
	// FlagAllCovered is set when every exit has been explored.
	FlagAllCovered
)

// FinishSample closes out the current sample: outside self mode, folds
// it into gradient_score_sum via updateSample, then reports which of
// the three conditions above held and the seed id this sample should be
// filed under (efc_seed_count before increment if new coverage was
// observed, -1 otherwise — each unique-coverage sample gets a fresh id
// on its way out).
func (e *Engine) FinishSample() (flags int32, seedID int32) {
	if !e.selfMode {
		e.updateSample()
	}

	if e.isEfc {
		flags |= FlagNewCoverage
	}
	if e.explored.Contains(e.target) {
		flags |= FlagTargetCovered
	}
	if e.explored.Len() >= int(e.tree.NumExits()) {
		flags |= FlagAllCovered
	}

	if e.isEfc {
		seedID = e.efcSeedCount
		e.efcSeedCount++
		return flags, seedID
	}
	return flags, -1
}
