package data

// TargetProvider loads a workload of target totals from a source
type TargetProvider interface {
	// LoadTargets reads every target total from the source, in order
	LoadTargets(source string) ([]int, error)

	// GetName returns the name of the provider
	GetName() string
}

// CSVColumnMapping describes where target totals live in a CSV file
type CSVColumnMapping struct {
	// TargetHeader names the column holding targets; matched case-insensitively
	TargetHeader string
	// TargetCol is used when no header matches TargetHeader
	TargetCol int
	// HasHeader skips the first record
	HasHeader bool
}

// DefaultCSVFormat reads a "target" column, falling back to the first column
var DefaultCSVFormat = CSVColumnMapping{
	TargetHeader: "target",
	TargetCol:    0,
	HasHeader:    true,
}

// HeaderlessCSVFormat reads the first column of every record
var HeaderlessCSVFormat = CSVColumnMapping{
	TargetCol: 0,
	HasHeader: false,
}
