package handler

import (
	"net/http"
	"strings"

	"code.cloudfoundry.org/echodemo/page"
	"code.cloudfoundry.org/echodemo/prometheus"
	"code.cloudfoundry.org/lager"
	"github.com/julienschmidt/httprouter"
)

// Routes are looked up under a single method: the demo pages do not branch
// on the HTTP verb.
const lookupMethod = http.MethodGet

type Router struct {
	routes   *httprouter.Router
	demo     *Demo
	logger   lager.Logger
	recorder prometheus.Recorder
}

// Route is a resolved request path. Segment is the path with a single leading
// slash removed.
type Route struct {
	Segment string
	Found   bool
	Handle  httprouter.Handle
}

func New(logger lager.Logger, recorder prometheus.Recorder) *Router {
	routes := httprouter.New()
	routes.RedirectTrailingSlash = false
	routes.RedirectFixedPath = false
	routes.HandleMethodNotAllowed = false

	demo := NewDemoHandler(logger, recorder)

	registerIndexEndpoints(routes, demo)
	registerDemoEndpoints(routes, demo)
	registerCookieEndpoints(routes, demo)

	return &Router{
		routes:   routes,
		demo:     demo,
		logger:   logger,
		recorder: recorder,
	}
}

func registerIndexEndpoints(routes *httprouter.Router, demo *Demo) {
	routes.GET("/", demo.Index)
	routes.GET("/favicon.ico", demo.Favicon)
}

func registerDemoEndpoints(routes *httprouter.Router, demo *Demo) {
	routes.GET("/demoget", demo.Get)
	routes.GET("/demopost", demo.Post)
	routes.GET("/democookie", demo.Cookie)
}

func registerCookieEndpoints(routes *httprouter.Router, demo *Demo) {
	routes.GET("/setcookie1", demo.CookieAction(page.Set, 1))
	routes.GET("/setcookie2", demo.CookieAction(page.Set, 2))
	routes.GET("/delcookie1", demo.CookieAction(page.Delete, 1))
	routes.GET("/delcookie2", demo.CookieAction(page.Delete, 2))
}

func (r *Router) Resolve(path string) Route {
	segment := strings.TrimPrefix(path, "/")

	handle, _, _ := r.routes.Lookup(lookupMethod, "/"+segment)
	if handle == nil {
		return Route{Segment: segment, Handle: r.demo.NotFound(segment)}
	}

	return Route{Segment: segment, Found: true, Handle: handle}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := r.logger.Session("request", lager.Data{"method": req.Method, "path": req.URL.Path})

	route := r.Resolve(req.URL.Path)
	logger.Debug("serving", lager.Data{"segment": route.Segment, "found": route.Found})

	route.Handle(w, req, nil)
	r.recorder.Increment(prometheus.RequestsServed)
}
