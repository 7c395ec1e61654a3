package echodemo

const (
	// Environment Variable Names
	EnvPort = "PORT"

	DefaultPort     = 31337
	DefaultLogLevel = "info"

	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeIcon = "image/x-icon"
)

type Config struct {
	Properties Properties `yaml:"demo"`
}

type Properties struct {
	ListenAddress string `yaml:"listen_address"`
	Port          int    `yaml:"port"`
	TLSPort       int    `yaml:"tls_port"`
	MetricsPort   int    `yaml:"metrics_port"`

	ServerCertPath string `yaml:"server_cert_path"`
	ServerKeyPath  string `yaml:"server_key_path"`
	ClientCAPath   string `yaml:"client_ca_path"`

	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Properties: Properties{
			Port:     DefaultPort,
			LogLevel: DefaultLogLevel,
		},
	}
}
