package eff

import (
	"os"

	"github.com/ib-77/lazyv/pkg/val"
)

// ReadFile is an IO reading the whole file at path. Each Run re-reads the
// file.
func ReadFile(path string) IO[string] {
	return Func[string](func() (string, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	})
}

// WriteFile is an IO that materializes data and writes it to path on every
// Run, reporting the number of bytes written.
func WriteFile(path string, data val.Value[string]) IO[int] {
	return Func[int](func() (int, error) {
		s := data.Lift()
		if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
			return 0, err
		}
		return len(s), nil
	})
}
