package val

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Collect aggregates a batch of results into one. Successful payloads are
// gathered in order; failure errors are joined into a single Failure.
func Collect[T any](results ...Result[T]) Result[[]T] {
	var err error
	out := make([]T, 0, len(results))

	for _, r := range results {
		if r.IsSuccess() {
			out = append(out, r.Result())
			continue
		}

		e := GetErrors(err)
		e = append(e, r.Err())
		err = errors.Join(e...)
	}

	if !IsNil(err) {
		return Failure[[]T](err)
	}
	return Success(out)
}
