package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/echodemo"
	"code.cloudfoundry.org/echodemo/config"
	"code.cloudfoundry.org/lager"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var (
		configDir  string
		configPath string
		cfg        *echodemo.Config
		err        error
	)

	writeConfig := func(content string) {
		configPath = filepath.Join(configDir, "config.yml")
		Expect(ioutil.WriteFile(configPath, []byte(content), 0600)).To(Succeed())
	}

	BeforeEach(func() {
		configDir, err = ioutil.TempDir("", "echodemo-config")
		Expect(err).NotTo(HaveOccurred())
		configPath = ""
		Expect(os.Unsetenv(echodemo.EnvPort)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(configDir)).To(Succeed())
		Expect(os.Unsetenv(echodemo.EnvPort)).To(Succeed())
	})

	JustBeforeEach(func() {
		cfg, err = config.ReadConfig(configPath)
	})

	When("no config path is given", func() {
		It("uses the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Properties.Port).To(Equal(echodemo.DefaultPort))
			Expect(cfg.Properties.LogLevel).To(Equal("info"))
			Expect(cfg.Properties.TLSPort).To(BeZero())
			Expect(cfg.Properties.MetricsPort).To(BeZero())
		})
	})

	When("the config file sets properties", func() {
		BeforeEach(func() {
			writeConfig(`
demo:
  listen_address: 127.0.0.1
  tls_port: 8443
  metrics_port: 9090
  server_cert_path: /certs/tls.crt
  server_key_path: /certs/tls.key
  client_ca_path: /certs/ca.crt
  log_level: debug
`)
		})

		It("reads them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Properties).To(Equal(echodemo.Properties{
				ListenAddress:  "127.0.0.1",
				Port:           echodemo.DefaultPort,
				TLSPort:        8443,
				MetricsPort:    9090,
				ServerCertPath: "/certs/tls.crt",
				ServerKeyPath:  "/certs/tls.key",
				ClientCAPath:   "/certs/ca.crt",
				LogLevel:       "debug",
			}))
		})
	})

	When("the PORT environment variable is set", func() {
		BeforeEach(func() {
			writeConfig("demo:\n  port: 8080\n")
			Expect(os.Setenv(echodemo.EnvPort, "9000")).To(Succeed())
		})

		It("overrides the configured port", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Properties.Port).To(Equal(9000))
		})
	})

	When("the PORT environment variable is not a number", func() {
		BeforeEach(func() {
			Expect(os.Setenv(echodemo.EnvPort, "http")).To(Succeed())
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("invalid PORT environment variable")))
		})
	})

	When("the config file does not exist", func() {
		BeforeEach(func() {
			configPath = filepath.Join(configDir, "missing.yml")
		})

		It("returns a wrapped error", func() {
			Expect(err).To(MatchError(ContainSubstring("failed to read config from")))
			Expect(err).To(MatchError(ContainSubstring("failed to read file")))
		})
	})

	When("the config file is not yaml", func() {
		BeforeEach(func() {
			writeConfig("demo: [")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("failed to unmarshal yaml")))
		})
	})

	When("a TLS port is set without a certificate", func() {
		BeforeEach(func() {
			writeConfig("demo:\n  tls_port: 8443\n")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("tls_port requires server_cert_path and server_key_path")))
		})
	})

	When("every listener is disabled", func() {
		BeforeEach(func() {
			writeConfig("demo:\n  port: 0\n")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("neither port nor tls_port is set")))
		})
	})

	When("a port is out of range", func() {
		BeforeEach(func() {
			writeConfig("demo:\n  metrics_port: 70000\n")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("metrics_port 70000 is out of range")))
		})
	})

	When("the log level is unknown", func() {
		BeforeEach(func() {
			writeConfig("demo:\n  log_level: chatty\n")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring(`unknown log level "chatty"`)))
		})
	})

	Describe("ParseLogLevel", func() {
		It("maps names to lager levels", func() {
			for name, level := range map[string]lager.LogLevel{
				"debug": lager.DEBUG,
				"INFO":  lager.INFO,
				"":      lager.INFO,
				"error": lager.ERROR,
				"fatal": lager.FATAL,
			} {
				Expect(config.ParseLogLevel(name)).To(Equal(level))
			}
		})
	})
})
