package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a ServeMux serving net/http/pprof under prefix, e.g.
// "/debug/pprof/".
func PprofMux(prefix string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(prefix, pprof.Index)
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handle(prefix+name, pprof.Handler(name))
	}

	return mux
}
