package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. CORSOrigins lists the origins the
// browser client may call from; "*" allows any origin and is only
// acceptable outside production.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// CORSOrigins is a comma-separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}
