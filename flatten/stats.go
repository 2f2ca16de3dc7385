package flatten

// Stats records what each pipeline stage did, for callers that want to
// report on a flatten run or decide whether a non-strict warning should be
// surfaced to a human.
type Stats struct {
	UsesResolved     int
	MarkersInstanced int
	PatternsExpanded int
	MasksConverted   int
	ClipsApplied     int
	GradientsBaked   int
	TransformsBaked  int
	DefsRemoved      int

	// Warnings accumulates non-strict verification failures and other
	// recoverable anomalies encountered during the run (§4.9, §7).
	Warnings []string

	// Verifications lists every verification outcome by category, per the
	// FlattenStats.verifications record (§3).
	Verifications []VerificationOutcome
}

// VerificationOutcome is one recorded entry of Stats.Verifications.
type VerificationOutcome struct {
	Category string
	Valid    bool
	Message  string
}

func (s *Stats) warn(msg string) {
	s.Warnings = append(s.Warnings, msg)
}
