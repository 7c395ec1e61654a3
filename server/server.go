package server

import (
	"crypto/tls"
	"net"
	"net/http"
	"os"
	"strconv"

	"code.cloudfoundry.org/echodemo"
	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"
)

// New returns a runner serving every enabled listener until it receives
// SIGINT or SIGTERM. tlsConfig may be nil when no TLS port is configured.
func New(logger lager.Logger, props echodemo.Properties, handler, metricsHandler http.Handler, tlsConfig *tls.Config) ifrit.Runner {
	members := Members(props, handler, metricsHandler, tlsConfig)

	for _, m := range members {
		logger.Info("listener-configured", lager.Data{"name": m.Name})
	}

	return sigmon.New(grouper.NewParallel(os.Interrupt, members))
}

func Members(props echodemo.Properties, handler, metricsHandler http.Handler, tlsConfig *tls.Config) grouper.Members {
	members := grouper.Members{}

	if props.Port != 0 {
		members = append(members, grouper.Member{
			Name:   "plaintext",
			Runner: http_server.New(address(props.ListenAddress, props.Port), handler),
		})
	}

	if props.TLSPort != 0 && tlsConfig != nil {
		members = append(members, grouper.Member{
			Name:   "tls",
			Runner: http_server.NewTLSServer(address(props.ListenAddress, props.TLSPort), handler, tlsConfig),
		})
	}

	if props.MetricsPort != 0 && metricsHandler != nil {
		members = append(members, grouper.Member{
			Name:   "metrics",
			Runner: http_server.New(address(props.ListenAddress, props.MetricsPort), metricsHandler),
		})
	}

	return members
}

func address(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
