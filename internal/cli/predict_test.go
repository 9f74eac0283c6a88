package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"homeprice/internal/config"
	"homeprice/internal/stubapi"
)

const houseJSON = `{
  "property_type": 0, "bhk": 2, "size_sqft": 1200, "price_per_sqft": 6500,
  "furnished_status": 1, "total_floors": 10, "age_of_property": 5,
  "nearby_schools": 3, "nearby_hospitals": 2, "public_transport": 1,
  "parking_space": 1, "security": 1, "amenities": 1, "facing": 0,
  "owner_type": 0, "availability_status": 0
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func testEnv(endpoint string) (*env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cfg := config.Config{Endpoint: endpoint, AnimationMS: 50}.WithDefaults()
	return &env{cfg: cfg, log: zerolog.Nop(), stdout: &stdout, stderr: &stderr}, &stdout, &stderr
}

func TestCollectValues(t *testing.T) {
	in := writeFile(t, "house.yaml", "bhk: 3\nsize_sqft: 1250.5\nfacing: 2\n")
	got, err := collectValues(in, []string{"bhk=4", "age_of_property= 7"})
	if err != nil {
		t.Fatal(err)
	}
	if got["bhk"] != "4" || got["size_sqft"] != "1250.5" || got["facing"] != "2" || got["age_of_property"] != " 7" {
		t.Fatalf("values=%v", got)
	}
	if got["property_type"] != "0" || got["price_per_sqft"] != "" {
		t.Fatalf("initial values not applied: %v", got)
	}
	if len(got) != 16 {
		t.Fatalf("len=%d", len(got))
	}
}

func TestCollectValues_Errors(t *testing.T) {
	if _, err := collectValues("", []string{"bhk"}); err == nil {
		t.Fatalf("expected error for missing '='")
	}
	if _, err := collectValues("", []string{"rooms=3"}); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	in := writeFile(t, "house.toml", "rooms = 3\n")
	if _, err := collectValues(in, nil); err == nil {
		t.Fatalf("expected error for unknown field in file")
	}
	if _, err := collectValues(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRunPredict_AgainstStub(t *testing.T) {
	srv := httptest.NewServer(stubapi.NewMux(stubapi.AreaValuer{}))
	defer srv.Close()
	e, stdout, stderr := testEnv(srv.URL)
	in := writeFile(t, "house.json", houseJSON)
	if err := runPredict(context.Background(), e, predictOptions{input: in, animate: true}); err != nil {
		t.Fatalf("predict: %v stderr=%s", err, stderr)
	}
	out := stdout.String()
	for _, want := range []string{"₹ 78.00 Lakhs\n", "₹ 0.78 Crores", "₹ 74.10 L – ₹ 81.90 L", "Features used: 19", "Model accuracy: 98.09%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPredict_DebugLogsControllerEvents(t *testing.T) {
	srv := httptest.NewServer(stubapi.NewMux(stubapi.AreaValuer{}))
	defer srv.Close()
	e, _, _ := testEnv(srv.URL)
	var logs bytes.Buffer
	e.log = zerolog.New(&logs).Level(zerolog.DebugLevel)
	in := writeFile(t, "house.json", houseJSON)
	if err := runPredict(context.Background(), e, predictOptions{input: in}); err != nil {
		t.Fatalf("predict: %v", err)
	}
	for _, want := range []string{`"event":"submit_start"`, `"event":"submit_success"`, `"event":"idle"`} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("debug log missing %s:\n%s", want, logs.String())
		}
	}

	logs.Reset()
	e.log = zerolog.New(&logs).Level(zerolog.InfoLevel)
	if err := runPredict(context.Background(), e, predictOptions{input: in}); err != nil {
		t.Fatalf("predict: %v", err)
	}
	if strings.Contains(logs.String(), "controller event") {
		t.Fatalf("events logged above debug:\n%s", logs.String())
	}
}

func TestRunPredict_ServerError(t *testing.T) {
	srv := httptest.NewServer(stubapi.NewMux(stubapi.AreaValuer{}))
	defer srv.Close()
	e, _, stderr := testEnv(srv.URL)
	// number fields left empty are sent as null, which the service rejects
	err := runPredict(context.Background(), e, predictOptions{sets: []string{"bhk=2"}})
	if !IsPredictionFailed(err) {
		t.Fatalf("err=%v", err)
	}
	if !strings.Contains(stderr.String(), "Prediction Error: size_sqft") {
		t.Fatalf("stderr=%q", stderr.String())
	}
}

func TestRunPredict_StrictRefusesUnparsed(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls.Add(1) }))
	defer srv.Close()
	e, _, _ := testEnv(srv.URL)
	e.cfg.Strict = true
	in := writeFile(t, "house.json", houseJSON)
	if err := runPredict(context.Background(), e, predictOptions{input: in, sets: []string{"bhk=abc"}}); err == nil {
		t.Fatalf("expected unparsed error")
	}
	if calls.Load() != 0 {
		t.Fatalf("strict mode sent a request")
	}
}

func TestRunPredict_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	e, _, stderr := testEnv(url)
	in := writeFile(t, "house.json", houseJSON)
	err := runPredict(context.Background(), e, predictOptions{input: in})
	if !IsPredictionFailed(err) {
		t.Fatalf("err=%v", err)
	}
	if !strings.Contains(stderr.String(), "Network error. Please check your connection and try again.") {
		t.Fatalf("stderr=%q", stderr.String())
	}
}

func TestRunHealth(t *testing.T) {
	srv := httptest.NewServer(stubapi.NewMux(stubapi.AreaValuer{}))
	defer srv.Close()
	e, stdout, _ := testEnv(srv.URL)
	if err := runHealth(context.Background(), e); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "status: healthy") {
		t.Fatalf("stdout=%q", stdout.String())
	}
}

func TestWatchFile_DebouncesChanges(t *testing.T) {
	path := writeFile(t, "house.json", houseJSON)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	e, _, _ := testEnv("")
	go func() {
		done <- watchFile(ctx, path, 50*time.Millisecond, e.log, func(context.Context) { calls <- struct{}{} })
	}()
	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(houseJSON), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatalf("no callback after change")
	}
	select {
	case <-calls:
		t.Fatalf("burst of writes produced more than one call")
	case <-time.After(200 * time.Millisecond):
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch returned %v", err)
	}
}

func TestRunWatch_RequiresInput(t *testing.T) {
	e, _, _ := testEnv("")
	if err := runWatch(context.Background(), e, predictOptions{watch: true}); err == nil {
		t.Fatalf("expected error without --input")
	}
}
