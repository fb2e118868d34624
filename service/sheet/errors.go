package sheet

import "fmt"

// RowError records a spreadsheet row that was skipped.
type RowError struct {
	Sheet string
	Line  int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Sheet, e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }
