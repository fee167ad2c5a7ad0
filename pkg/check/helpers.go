package check

import "fmt"

// Pass marks the result as successful with the given message.
func (r *Result) Pass(message string) Result {
	r.Status = StatusOK
	r.Kind = KindNone
	r.Message = message
	r.Err = nil
	return *r
}

// Fail sets the result to failed status with a message and the error behind it.
func (r *Result) Fail(kind Kind, message string, err error) Result {
	r.Status = StatusFail
	r.Kind = kind
	r.Message = message
	r.Err = err
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
