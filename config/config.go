package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"code.cloudfoundry.org/echodemo"
	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ReadConfig returns the defaults overlaid with the YAML file at path (if
// any) and the environment.
func ReadConfig(path string) (*echodemo.Config, error) {
	cfg := echodemo.DefaultConfig()

	if path != "" {
		if err := readConfigFromFile(path, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to read config from %s", path)
		}
	}

	if envPort := os.Getenv(echodemo.EnvPort); envPort != "" {
		port, err := strconv.Atoi(envPort)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s environment variable", echodemo.EnvPort)
		}

		cfg.Properties.Port = port
	}

	if err := validate(cfg.Properties); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

func readConfigFromFile(path string, cfg *echodemo.Config) error {
	fileBytes, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return errors.Wrap(err, "failed to read file")
	}

	return errors.Wrap(yaml.Unmarshal(fileBytes, cfg), "failed to unmarshal yaml")
}

func validate(props echodemo.Properties) error {
	for name, port := range map[string]int{
		"port":         props.Port,
		"tls_port":     props.TLSPort,
		"metrics_port": props.MetricsPort,
	} {
		if port < 0 || port > 65535 {
			return errors.Errorf("%s %d is out of range", name, port)
		}
	}

	if props.Port == 0 && props.TLSPort == 0 {
		return errors.New("neither port nor tls_port is set")
	}

	if props.TLSPort != 0 && (props.ServerCertPath == "" || props.ServerKeyPath == "") {
		return errors.New("tls_port requires server_cert_path and server_key_path")
	}

	if _, err := ParseLogLevel(props.LogLevel); err != nil {
		return err
	}

	return nil
}

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return lager.DEBUG, nil
	case "", "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.INFO, errors.Errorf("unknown log level %q", level)
	}
}
