package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"text2phenotype.com/absa/logger"
)

var defaultLogger = logger.NewLogger("API")

type endpointLoggerFields struct {
	Method string `json:"method"`
	Url    string `json:"url"`
}

const (
	RequestInfoFieldsKey = "request_info"
	RequestIDHeader      = "X-Request-ID"
)

func makeRequestLogger(request *http.Request, tid string) zerolog.Logger {
	fields := endpointLoggerFields{
		Method: request.Method,
		Url:    request.URL.String(),
	}
	return defaultLogger.
		With().Interface(RequestInfoFieldsKey, fields).Str("tid", tid).Logger()
}

// requestTid takes the caller's request id, a new uuid otherwise.
func requestTid(request *http.Request) string {
	if tid := request.Header.Get(RequestIDHeader); len(tid) > 0 {
		return tid
	}
	return uuid.New().String()
}
