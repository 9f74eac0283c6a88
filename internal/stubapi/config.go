package stubapi

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
)

// SetCORSOrigins enables CORS for the given origins. An empty list
// disables it.
func SetCORSOrigins(origins []string) {
	corsEnabled = len(origins) > 0
	corsAllowedOrigins = append([]string(nil), origins...)
}
