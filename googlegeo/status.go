package googlegeo

import "fmt"

// Status is the API's outcome vocabulary for a request.
type Status string

const (
	// StatusOK means the address was parsed and at least one result returned.
	StatusOK Status = "OK"
	// StatusZeroResults means the lookup succeeded but matched nothing. It is
	// a successful outcome, not an error.
	StatusZeroResults Status = "ZERO_RESULTS"
	// StatusOverQueryLimit means the caller is over quota.
	StatusOverQueryLimit Status = "OVER_QUERY_LIMIT"
	// StatusRequestDenied means the request was denied.
	StatusRequestDenied Status = "REQUEST_DENIED"
	// StatusInvalidRequest usually means the query component is missing.
	StatusInvalidRequest Status = "INVALID_REQUEST"
	// StatusUnknownError means a server-side error; the request may succeed
	// on a later attempt.
	StatusUnknownError Status = "UNKNOWN_ERROR"
)

// ok reports whether the status is a successful outcome.
func (s Status) ok() bool {
	return s == StatusOK || s == StatusZeroResults
}

// StatusError is the classified failure returned when the API answers with a
// non-success status. It carries the status and the service-supplied message
// when one was present.
type StatusError struct {
	Status  Status
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("googlegeo: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("googlegeo: %s", e.Status)
}
