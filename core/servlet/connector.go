package servlet

// Connector holds per-listener settings that govern response compression.
type Connector struct {
	// Compression enables gzip when set to "on". Any other value disables it.
	Compression string `env:"CONNECTOR_COMPRESSION" envDefault:"on"`
	// CompressionMinSize is the smallest body, in bytes, worth compressing.
	CompressionMinSize int `env:"CONNECTOR_COMPRESSION_MIN_SIZE" envDefault:"20"`
	// NoCompressionUserAgents is a comma-separated list of User-Agent fragments
	// that never receive compressed bodies.
	NoCompressionUserAgents string `env:"CONNECTOR_NO_COMPRESSION_USER_AGENTS" envDefault:"gozilla, traviata"`
	// CompressibleMimeTypes is a comma-separated list of MIME types eligible for gzip.
	CompressibleMimeTypes string `env:"CONNECTOR_COMPRESSIBLE_MIME_TYPES" envDefault:"text/html,text/xml,text/javascript,application/javascript,text/css,text/plain,text/json"`
}

// DefaultConnector returns the connector settings used when none are configured.
func DefaultConnector() Connector {
	return Connector{
		Compression:             "on",
		CompressionMinSize:      20,
		NoCompressionUserAgents: "gozilla, traviata",
		CompressibleMimeTypes:   "text/html,text/xml,text/javascript,application/javascript,text/css,text/plain,text/json",
	}
}
