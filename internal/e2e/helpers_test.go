package e2e

import (
	"net/http/httptest"
	"testing"

	"homeprice/internal/controller"
	"homeprice/internal/predictclient"
	"homeprice/internal/stubapi"
)

// newStack wires a stub server, a client and a controller the way the
// command line does, and records controller events.
func newStack(t *testing.T, v stubapi.Valuer, opts ...controller.Option) (*httptest.Server, *controller.Controller, *controller.MemoryPublisher) {
	t.Helper()
	srv := httptest.NewServer(stubapi.NewMux(v))
	t.Cleanup(srv.Close)
	pub := controller.NewMemoryPublisher()
	client := predictclient.New(srv.URL)
	ctrl := controller.New(client, append([]controller.Option{controller.WithPublisher(pub)}, opts...)...)
	return srv, ctrl, pub
}

func fullValues() map[string]string {
	return map[string]string{
		"property_type": "1", "bhk": "3", "size_sqft": "1500", "price_per_sqft": "8000",
		"furnished_status": "2", "total_floors": "12", "age_of_property": "4",
		"nearby_schools": "2", "nearby_hospitals": "1", "public_transport": "1",
		"parking_space": "1", "security": "1", "amenities": "1", "facing": "0",
		"owner_type": "0", "availability_status": "0",
	}
}

type notReady struct{ stubapi.AreaValuer }

func (notReady) Ready() bool { return false }
