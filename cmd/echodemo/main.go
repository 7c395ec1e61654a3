package main

import (
	"crypto/tls"
	"net/http"
	"os"

	cmdcommons "code.cloudfoundry.org/echodemo/cmd"
	"code.cloudfoundry.org/echodemo/config"
	"code.cloudfoundry.org/echodemo/handler"
	"code.cloudfoundry.org/echodemo/prometheus"
	"code.cloudfoundry.org/echodemo/server"
	"code.cloudfoundry.org/echodemo/util"
	"code.cloudfoundry.org/lager"
	"github.com/jessevdk/go-flags"
	"github.com/julienschmidt/httprouter"
	api "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
)

type options struct {
	ConfigFile string `short:"c" long:"config" description:"Config for running echodemo"`
}

func main() {
	var opts options
	_, err := flags.ParseArgs(&opts, os.Args)
	cmdcommons.ExitIfError(err)

	cfg, err := config.ReadConfig(opts.ConfigFile)
	cmdcommons.ExitIfError(err)

	logLevel, err := config.ParseLogLevel(cfg.Properties.LogLevel)
	cmdcommons.ExitIfError(err)

	logger := lager.NewLogger("echodemo")
	logger.RegisterSink(lager.NewPrettySink(os.Stdout, logLevel))

	registry := api.NewRegistry()
	registry.MustRegister(api.NewGoCollector())

	recorder, err := prometheus.NewRecorder(logger.Session("metrics"), registry)
	cmdcommons.ExitIfError(err)

	var tlsConfig *tls.Config
	if cfg.Properties.TLSPort != 0 {
		tlsConfig, err = util.CreateTLSServerConfig(util.CertPaths{
			Crt: cfg.Properties.ServerCertPath,
			Key: cfg.Properties.ServerKeyPath,
			Ca:  cfg.Properties.ClientCAPath,
		})
		cmdcommons.ExitIfError(err)
	}

	var metricsHandler http.Handler
	if cfg.Properties.MetricsPort != 0 {
		metricsHandler = metricsMux(registry)
	}

	demoHandler := handler.New(logger.Session("handler"), recorder)
	runner := server.New(logger, cfg.Properties, demoHandler, metricsHandler, tlsConfig)

	process := ifrit.Invoke(runner)
	logger.Info("serving", lager.Data{
		"port":         cfg.Properties.Port,
		"tls-port":     cfg.Properties.TLSPort,
		"metrics-port": cfg.Properties.MetricsPort,
	})

	err = <-process.Wait()
	logger.Info("shutting-down")
	cmdcommons.ExitIfError(err)
}

func metricsMux(registry *api.Registry) http.Handler {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return router
}
