package xhttp

import "net/http"

const (
	XForwardedFor    = "X-Forwarded-For"
	XRequestID       = "X-Request-ID"
	XContentTypeOpts = "X-Content-Type-Options"
	XFrameOpts       = "X-Frame-Options"
	XXSSProtection   = "X-Xss-Protection"
	ReferrerPolicy   = "Referrer-Policy"
)

const (
	ContentType = "Content-Type"
	Accept      = "Accept"
	UserAgent   = "User-Agent"
)

const applicationJSON = "application/json"

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, applicationJSON)
}

func SetRequestHeaderRequestID(r *http.Request, requestID string) {
	r.Header.Set(XRequestID, requestID)
}

func SetRequestHeaderAcceptJSON(r *http.Request) {
	r.Header.Set(Accept, applicationJSON)
}
