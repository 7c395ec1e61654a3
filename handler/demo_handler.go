package handler

import (
	"net/http"

	"code.cloudfoundry.org/echodemo/decoder"
	"code.cloudfoundry.org/echodemo/page"
	"code.cloudfoundry.org/echodemo/prometheus"
	"code.cloudfoundry.org/lager"
	"github.com/julienschmidt/httprouter"
)

type Demo struct {
	logger   lager.Logger
	recorder prometheus.Recorder
}

func NewDemoHandler(logger lager.Logger, recorder prometheus.Recorder) *Demo {
	return &Demo{logger: logger, recorder: recorder}
}

func (d *Demo) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeResponse(w, page.Index())
}

func (d *Demo) Favicon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeResponse(w, page.Favicon())
}

func (d *Demo) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeResponse(w, page.DemoGet(decoder.DecodeQuery(r.URL.RawQuery)))
}

func (d *Demo) Post(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	form, err := decoder.DecodeFormBody(r.ContentLength, r.Body)
	if err != nil {
		d.logger.Error("request-body-read-failed", err, lager.Data{"content-length": r.ContentLength})
		d.recorder.Increment(prometheus.BadRequestBodies)
		writeResponse(w, page.Text(http.StatusBadRequest, "error 400 bad request: "+err.Error()))

		return
	}

	writeResponse(w, page.DemoPost(form))
}

func (d *Demo) Cookie(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeResponse(w, page.DemoCookie(decoder.DecodeCookies(r.Header.Get("Cookie"))))
}

func (d *Demo) CookieAction(action page.Action, number int) httprouter.Handle {
	counter := prometheus.CookiesSet
	if action == page.Delete {
		counter = prometheus.CookiesDeleted
	}

	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		d.logger.Debug("cookie-action", lager.Data{"action": action, "number": number})
		d.recorder.Increment(counter)
		writeResponse(w, page.CookieAction(action, number))
	}
}

func (d *Demo) NotFound(segment string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		d.logger.Info("not-found", lager.Data{"segment": segment})
		d.recorder.Increment(prometheus.NotFoundResponses)
		writeResponse(w, page.NotFound(segment))
	}
}

func writeResponse(w http.ResponseWriter, resp *page.Response) {
	for _, h := range resp.Headers {
		w.Header().Add(h.Name, h.Value)
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
