package eff

import (
	"fmt"
	"io"
	"os"

	"github.com/ib-77/lazyv/pkg/val"
)

// Fprint materializes v by lifting it and writes the result to w followed
// by a newline. The collaborator performs the side effect; the value tree
// only computes.
func Fprint[V any](w io.Writer, v val.Value[V]) val.Result[V] {
	return Func[V](func() (V, error) {
		out := v.Lift()
		_, err := fmt.Fprintln(w, out)
		return out, err
	}).Run()
}

// Print materializes v to stdout.
func Print[V any](v val.Value[V]) val.Result[V] {
	return Fprint(os.Stdout, v)
}
