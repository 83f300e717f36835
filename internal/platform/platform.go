package platform

// Reader acquires the raw display report.
type Reader interface {
	// ReadLines returns the report of `xrandr --verbose`, one entry per line.
	ReadLines() ([]string, error)
}

// Runner executes generated display commands.
type Runner interface {
	// Run executes one command line. A nonzero exit is an *ExecutionError.
	Run(command string) error
}
