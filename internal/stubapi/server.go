package stubapi

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/secure"

	"homeprice/pkg/types"
)

const (
	modelAccuracy = "98.09%"
	bandFraction  = 0.05
)

// NewMux returns the stub prediction endpoint for v.
func NewMux(v Valuer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(secure.New(secure.Options{ContentTypeNosniff: true, FrameDeny: true}).Handler)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)

	r.Post("/predict", predictHandler(v))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ready := v.Ready()
		writeJSON(w, http.StatusOK, types.HealthResponse{Status: "healthy", ModelLoaded: ready, ScalerLoaded: ready})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// predictHandler godoc
// @Summary      Predict a price
// @Description  Values a property from its 16 attributes. Absent fields take server defaults.
// @Tags         predict
// @Accept       json
// @Produce      json
// @Param        request  body      types.PredictRequest  true  "Property attributes"
// @Success      200      {object}  types.PredictResponse
// @Failure      400      {object}  types.PredictResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /predict [post]
func predictHandler(v Valuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !v.Ready() {
			predictionsTotal.WithLabelValues("not_ready").Inc()
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Model not loaded properly"})
			return
		}
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			predictionsTotal.WithLabelValues("bad_request").Inc()
			writePredictFailure(w, http.StatusBadRequest, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body == nil {
			predictionsTotal.WithLabelValues("bad_request").Inc()
			writePredictFailure(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		raw, err := decodeFeatures(body)
		if err != nil {
			predictionsTotal.WithLabelValues("bad_request").Inc()
			writePredictFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		feats, err := engineer(raw)
		if err != nil {
			predictionsTotal.WithLabelValues("bad_request").Inc()
			writePredictFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		price, err := v.Value(feats)
		if err != nil {
			predictionsTotal.WithLabelValues("bad_request").Inc()
			writePredictFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		predictionsTotal.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, types.PredictResponse{
			Success:              true,
			PredictedPrice:       round2(price),
			PredictedPriceCrores: round2(price / 100),
			ConfidenceLower:      round2(price * (1 - bandFraction)),
			ConfidenceUpper:      round2(price * (1 + bandFraction)),
			FeaturesUsed:         feats.Len(),
			ModelAccuracy:        modelAccuracy,
		})
	}
}
