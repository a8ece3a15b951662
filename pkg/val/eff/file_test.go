package eff

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ib-77/lazyv/pkg/val"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	res := ReadFile(path).Run()
	if !res.IsSuccess() || res.Result() != "hello" {
		t.Fatalf("expected hello, got success=%v val=%q err=%v", res.IsSuccess(), res.Result(), res.Err())
	}
}

func TestReadFile_MissingBecomesFailure(t *testing.T) {
	t.Parallel()
	res := ReadFile(filepath.Join(t.TempDir(), "absent.txt")).Run()
	if !res.IsFailure() || !errors.Is(res.Err(), os.ErrNotExist) {
		t.Fatalf("expected not-exist failure, got failure=%v err=%v", res.IsFailure(), res.Err())
	}
}

func TestWriteFile_MaterializesLazily(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	count := 0
	data := val.Of(func() string {
		count++
		return "payload"
	})

	action := WriteFile(path, data)
	if count != 0 {
		t.Fatalf("constructing the action must not lift the data")
	}

	res := action.Run()
	if !res.IsSuccess() || res.Result() != len("payload") {
		t.Fatalf("expected %d bytes written, got success=%v n=%v err=%v", len("payload"), res.IsSuccess(), res.Result(), res.Err())
	}

	b, err := os.ReadFile(path)
	if err != nil || string(b) != "payload" {
		t.Fatalf("expected payload on disk, got %q, %v", b, err)
	}
}

func TestFprint_MaterializesValue(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	res := Fprint(buf, val.Lit(42))

	if !res.IsSuccess() || res.Result() != 42 {
		t.Fatalf("expected success 42, got success=%v val=%v", res.IsSuccess(), res.Result())
	}
	if buf.String() != "42\n" {
		t.Fatalf("expected printed line, got %q", buf.String())
	}
}

func TestLogged_LogsEachRunOutcome(t *testing.T) {
	t.Parallel()
	core, recorded := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	ok := Logged("fetch", Func[int](func() (int, error) { return 1, nil }), log)
	bad := Logged("fetch", Func[int](func() (int, error) { return 0, errors.New("down") }), log)

	ok.Run()
	ok.Run()
	bad.Run()

	entries := recorded.All()
	if len(entries) != 3 {
		t.Fatalf("expected one entry per Run, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[2].Level != zapcore.WarnLevel {
		t.Fatalf("expected info for success and warn for failure, got %v and %v", entries[0].Level, entries[2].Level)
	}
}
