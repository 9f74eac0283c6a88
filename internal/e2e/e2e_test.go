package e2e

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"homeprice/internal/anim"
	"homeprice/internal/controller"
	"homeprice/internal/stubapi"
	"homeprice/pkg/types"
)

func TestE2E_SuccessCycle(t *testing.T) {
	_, ctrl, pub := newStack(t, stubapi.AreaValuer{})
	out, err := ctrl.SubmitValues(context.Background(), fullValues())
	if err != nil {
		t.Fatal(err)
	}
	if !out.OK() {
		t.Fatalf("outcome=%+v", out)
	}
	want := types.PredictResponse{
		Success:              true,
		PredictedPrice:       120,
		PredictedPriceCrores: 1.2,
		ConfidenceLower:      114,
		ConfidenceUpper:      126,
		FeaturesUsed:         19,
		ModelAccuracy:        "98.09%",
	}
	if diff := cmp.Diff(want, *out.Response); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
	c := anim.NewCounter(out.Response.PredictedPrice, "₹ ", " Lakhs")
	if got := c.Text(anim.CounterDuration); got != "₹ 120.00 Lakhs" {
		t.Fatalf("counter=%q", got)
	}
	wantEvents := []string{controller.EventSubmitStart, controller.EventSubmitSuccess, controller.EventIdle}
	if diff := cmp.Diff(wantEvents, pub.Names()); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	if ctrl.State() != controller.StateIdle || ctrl.InFlight() {
		t.Fatalf("controller not idle")
	}
}

func TestE2E_ServerRejectsNull(t *testing.T) {
	_, ctrl, _ := newStack(t, stubapi.AreaValuer{})
	values := fullValues()
	values["size_sqft"] = "abc"
	out, err := ctrl.SubmitValues(context.Background(), values)
	if err != nil {
		t.Fatal(err)
	}
	if out.OK() || out.Kind != controller.FailureApplication {
		t.Fatalf("outcome=%+v", out)
	}
	if out.Message == "" || out.Message == controller.MsgPredictionFailed {
		t.Fatalf("expected the server's message, got %q", out.Message)
	}
}

func TestE2E_StrictRefusesLocally(t *testing.T) {
	_, ctrl, pub := newStack(t, stubapi.AreaValuer{}, controller.WithStrict(true))
	values := fullValues()
	values["bhk"] = ""
	if _, err := ctrl.SubmitValues(context.Background(), values); err == nil {
		t.Fatalf("expected unparsed error")
	}
	if len(pub.Events()) != 0 {
		t.Fatalf("no cycle should start, events=%v", pub.Names())
	}
}

func TestE2E_ModelNotLoaded(t *testing.T) {
	_, ctrl, _ := newStack(t, notReady{})
	out, err := ctrl.SubmitValues(context.Background(), fullValues())
	if err != nil {
		t.Fatal(err)
	}
	// the 500 body carries an error but no success flag
	if out.OK() || out.Kind != controller.FailureApplication || out.Message != "Model not loaded properly" {
		t.Fatalf("outcome=%+v", out)
	}
}

func TestE2E_ServerGone(t *testing.T) {
	srv, ctrl, _ := newStack(t, stubapi.AreaValuer{})
	srv.Close()
	out, err := ctrl.SubmitValues(context.Background(), fullValues())
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != controller.FailureTransport || out.Message != controller.MsgNetworkError {
		t.Fatalf("outcome=%+v", out)
	}
	if ctrl.State() != controller.StateIdle {
		t.Fatalf("state=%s", ctrl.State())
	}
}
