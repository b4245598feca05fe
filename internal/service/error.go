package service

func NewServiceError(code string, cause error) error {
	return Error{
		Code:  code,
		Cause: cause,
	}
}

// Error carries the rejection code for a transaction the ledger
// refused to apply. Callers branch on Code; Cause keeps the sentinel
// reachable through errors.Is.
type Error struct {
	Code  string
	Cause error
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
