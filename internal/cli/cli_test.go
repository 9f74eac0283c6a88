package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// helper to restore stubs after each test
func withCLIStubs(t *testing.T, stubs func()) {
	t.Helper()
	oldPredict, oldWatch, oldForm := fnPredict, fnWatch, fnForm
	oldHealth, oldFields, oldStub := fnHealth, fnFields, fnStubServer
	stubs()
	t.Cleanup(func() {
		fnPredict, fnWatch, fnForm = oldPredict, oldWatch, oldForm
		fnHealth, fnFields, fnStubServer = oldHealth, oldFields, oldStub
	})
}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestPredictDispatch(t *testing.T) {
	var got predictOptions
	var watched bool
	withCLIStubs(t, func() {
		fnPredict = func(ctx context.Context, e *env, o predictOptions) error { got = o; return nil }
		fnWatch = func(ctx context.Context, e *env, o predictOptions) error { watched = true; return nil }
	})
	code, _, stderr := runArgs(t, "predict", "--input", "house.yaml", "--set", "bhk=3", "--set", "age_of_property=4", "--animate")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr)
	}
	want := predictOptions{input: "house.yaml", sets: []string{"bhk=3", "age_of_property=4"}, animate: true}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(predictOptions{})); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if watched {
		t.Fatalf("watch should not run without --watch")
	}
	if code, _, _ := runArgs(t, "predict", "--input", "house.yaml", "--watch"); code != 0 || !watched {
		t.Fatalf("--watch not dispatched, exit=%d", code)
	}
}

func TestPredictStrictFlag(t *testing.T) {
	var strict bool
	withCLIStubs(t, func() {
		fnPredict = func(ctx context.Context, e *env, o predictOptions) error { strict = e.cfg.Strict; return nil }
	})
	if code, _, _ := runArgs(t, "predict"); code != 0 || strict {
		t.Fatalf("strict should default off, exit=%d", code)
	}
	if code, _, _ := runArgs(t, "predict", "--strict"); code != 0 || !strict {
		t.Fatalf("--strict not applied, exit=%d", code)
	}
}

func TestExitStatus(t *testing.T) {
	withCLIStubs(t, func() {
		fnPredict = func(ctx context.Context, e *env, o predictOptions) error {
			return predictionFailedError{message: "X"}
		}
		fnHealth = func(ctx context.Context, e *env) error { return errors.New("boom") }
	})
	code, _, stderr := runArgs(t, "predict")
	if code != 1 {
		t.Fatalf("exit=%d", code)
	}
	if strings.Contains(stderr, "error:") {
		t.Fatalf("failed prediction should not be reported twice: %q", stderr)
	}
	code, _, stderr = runArgs(t, "health")
	if code != 1 || !strings.Contains(stderr, "error: boom") {
		t.Fatalf("exit=%d stderr=%q", code, stderr)
	}
}

func TestUnknownCommand(t *testing.T) {
	if code, _, _ := runArgs(t, "frobnicate"); code != 1 {
		t.Fatalf("exit=%d", code)
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "homeprice.yaml")
	if err := os.WriteFile(cfgPath, []byte("endpoint: http://from-file\nstrict: true\ntoast_ms: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var seen env
	withCLIStubs(t, func() {
		fnHealth = func(ctx context.Context, e *env) error { seen = *e; return nil }
	})

	t.Setenv("HOMEPRICE_ENDPOINT", "")
	if code, _, stderr := runArgs(t, "--config", cfgPath, "health"); code != 0 {
		t.Fatalf("exit=%d %s", code, stderr)
	}
	if seen.cfg.Endpoint != "http://from-file" || !seen.cfg.Strict || seen.cfg.ToastMS != 1000 {
		t.Fatalf("file config not applied: %+v", seen.cfg)
	}
	if seen.cfg.AnimationMS != 1500 {
		t.Fatalf("defaults not applied: %+v", seen.cfg)
	}

	t.Setenv("HOMEPRICE_ENDPOINT", "http://from-env")
	runArgs(t, "--config", cfgPath, "health")
	if seen.cfg.Endpoint != "http://from-env" {
		t.Fatalf("env should override file, got %s", seen.cfg.Endpoint)
	}

	runArgs(t, "--config", cfgPath, "--endpoint", "http://from-flag", "health")
	if seen.cfg.Endpoint != "http://from-flag" {
		t.Fatalf("flag should override env, got %s", seen.cfg.Endpoint)
	}
}

func TestStubServerFlags(t *testing.T) {
	var seen env
	withCLIStubs(t, func() {
		fnStubServer = func(ctx context.Context, e *env) error { seen = *e; return nil }
	})
	if code, _, _ := runArgs(t, "stub-server", "--addr", "127.0.0.1:9999", "--cors-origin", "http://a.test"); code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if seen.cfg.StubAddr != "127.0.0.1:9999" || len(seen.cfg.CORSOrigins) != 1 {
		t.Fatalf("flags not applied: %+v", seen.cfg)
	}
}

func TestCompletion(t *testing.T) {
	code, out, _ := runArgs(t, "completion", "bash")
	if code != 0 || !strings.Contains(out, "homeprice") {
		t.Fatalf("exit=%d", code)
	}
}

func TestFieldsCommand(t *testing.T) {
	code, out, stderr := runArgs(t, "fields", "--style", "notty")
	if code != 0 {
		t.Fatalf("exit=%d %s", code, stderr)
	}
	for _, k := range []string{"bhk", "size_sqft", "availability_status"} {
		if !strings.Contains(out, k) {
			t.Fatalf("fields output missing %s", k)
		}
	}
}

func TestFieldsMarkdown(t *testing.T) {
	md := fieldsMarkdown()
	if n := strings.Count(md, "\n| `"); n != 16 {
		t.Fatalf("rows=%d", n)
	}
	if !strings.Contains(md, "1 to 10, step 1") {
		t.Fatalf("bhk range missing:\n%s", md)
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homeprice.log")
	log, closer := newLogger("debug", path, nil)
	log.Debug().Str("k", "v").Msg("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"message":"hello"`) {
		t.Fatalf("log file=%q", b)
	}
}

func TestNewLogger_LevelAndNop(t *testing.T) {
	var buf bytes.Buffer
	log, _ := newLogger("error", "", &buf)
	log.Info().Msg("hidden")
	log.Error().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("level filter: %q", buf.String())
	}
	nop, _ := newLogger("debug", "", nil)
	nop.Error().Msg("nowhere")
}
