package util

import (
	"crypto/tls"

	"code.cloudfoundry.org/tlsconfig"
	"github.com/pkg/errors"
)

type CertPaths struct {
	Crt, Key, Ca string
}

// CreateTLSServerConfig builds a server TLS config for the identity in
// certPaths. When a CA is given, clients must present a certificate signed
// by it.
func CreateTLSServerConfig(certPaths CertPaths) (*tls.Config, error) {
	var serverOpts []tlsconfig.ServerOption
	if certPaths.Ca != "" {
		serverOpts = append(serverOpts, tlsconfig.WithClientAuthenticationFromFile(certPaths.Ca))
	}

	tlsConfig, err := tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
		tlsconfig.WithIdentityFromFile(certPaths.Crt, certPaths.Key),
	).Server(serverOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build server tls config")
	}

	return tlsConfig, nil
}
