package prometheus

import (
	"errors"

	"code.cloudfoundry.org/lager"
	api "github.com/prometheus/client_golang/prometheus"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Recorder

const (
	RequestsServed    = "echodemo_requests_served"
	NotFoundResponses = "echodemo_not_found_responses"
	CookiesSet        = "echodemo_cookies_set"
	CookiesDeleted    = "echodemo_cookies_deleted"
	BadRequestBodies  = "echodemo_bad_request_bodies"
)

var counterHelp = map[string]string{
	RequestsServed:    "The total number of served requests",
	NotFoundResponses: "The total number of requests answered with 404",
	CookiesSet:        "The total number of cookies set",
	CookiesDeleted:    "The total number of cookies deleted",
	BadRequestBodies:  "The total number of request bodies that could not be read",
}

type Recorder interface {
	Increment(counterName string)
}

type prometheusRecorder struct {
	logger   lager.Logger
	counters map[string]api.Counter
}

func NewRecorder(logger lager.Logger, registry api.Registerer) (Recorder, error) {
	counters := map[string]api.Counter{}

	for name, help := range counterHelp {
		counter, err := registerCounter(registry, name, help)
		if err != nil {
			return nil, err
		}

		counters[name] = counter
	}

	return &prometheusRecorder{
		logger:   logger,
		counters: counters,
	}, nil
}

func (p *prometheusRecorder) Increment(counterName string) {
	logger := p.logger.Session("increment-counter", lager.Data{"counter-name": counterName})

	counter, ok := p.counters[counterName]
	if !ok {
		logger.Error("unknown-counter", nil)

		return
	}

	counter.Inc()
}

func registerCounter(registry api.Registerer, name, help string) (api.Counter, error) {
	c := api.NewCounter(api.CounterOpts{
		Name: name,
		Help: help,
	})

	err := registry.Register(c)
	if err == nil {
		return c, nil
	}

	var are api.AlreadyRegisteredError
	if errors.As(err, &are) {
		return are.ExistingCollector.(api.Counter), nil
	}

	return nil, err
}
