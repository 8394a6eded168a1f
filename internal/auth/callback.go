package auth

import (
	"fmt"
	"net/http"
)

// callbackResult is what the redirect delivered: a code, a denial or an error
type callbackResult struct {
	code      string
	cancelled bool
	err       error
}

// callbackHandler accepts the first redirect carrying the expected state.
// Requests with any other state are answered but otherwise ignored.
type callbackHandler struct {
	state   string
	results chan<- callbackResult
}

func newCallbackHandler(state string, results chan<- callbackResult) *callbackHandler {
	return &callbackHandler{state: state, results: results}
}

func (h *callbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	if q.Get("state") != h.state {
		http.Error(w, "Unknown or missing state", http.StatusBadRequest)
		return
	}

	if errCode := q.Get("error"); errCode != "" {
		err := fmt.Errorf("%s: %s", errCode, q.Get("error_description"))
		h.deliver(callbackResult{cancelled: errCode == "access_denied", err: err})
		writePage(w, http.StatusOK, "Sign-in was not completed. You can close this window.")
		return
	}

	code := q.Get("code")
	if code == "" {
		h.deliver(callbackResult{err: fmt.Errorf("callback is missing the authorization code")})
		writePage(w, http.StatusBadRequest, "Sign-in failed. You can close this window.")
		return
	}

	h.deliver(callbackResult{code: code})
	writePage(w, http.StatusOK, "Signed in. You can close this window and return to the terminal.")
}

// deliver never blocks; only the first result of an attempt counts
func (h *callbackHandler) deliver(res callbackResult) {
	select {
	case h.results <- res:
	default:
	}
}

func writePage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, "<!doctype html><html><body><p>%s</p></body></html>", message)
}
