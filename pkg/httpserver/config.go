package httpserver

import "time"

type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig creates a Server from cfg. Zero durations keep net/http defaults.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append([]Option{withConfig(cfg)}, opts...)...)
}

func withConfig(cfg Config) Option {
	return func(s *Server) {
		if cfg.Addr != "" {
			s.addr = cfg.Addr
		}
		s.readHeaderTimeout = cfg.ReadHeaderTimeout
		s.readTimeout = cfg.ReadTimeout
		s.writeTimeout = cfg.WriteTimeout
		s.idleTimeout = cfg.IdleTimeout
		if cfg.ShutdownTimeout > 0 {
			s.shutdownTimeout = cfg.ShutdownTimeout
		}
	}
}
