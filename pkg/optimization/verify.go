package optimization

// Verdict classifies how close a solution's total is to the target
type Verdict string

const (
	VerdictExact           Verdict = "exact"
	VerdictWithinTolerance Verdict = "within_tolerance"
	VerdictInvalid         Verdict = "invalid"
)

// Verify compares a total against the target with an absolute tolerance
func Verify(total, target, tolerance int) Verdict {
	switch {
	case total == target:
		return VerdictExact
	case absInt(total-target) <= tolerance:
		return VerdictWithinTolerance
	default:
		return VerdictInvalid
	}
}

// Describe returns a one-line human description of the verdict
func (v Verdict) Describe() string {
	switch v {
	case VerdictExact:
		return "valid solution, reaches the target"
	case VerdictWithinTolerance:
		return "valid solution, within the accepted range of the target"
	default:
		return "invalid solution"
	}
}
