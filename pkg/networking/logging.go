package networking

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

const defaultNetworkLogLevel = zerolog.DebugLevel

type loggingRoundTripper struct {
	next   http.RoundTripper
	logger *zerolog.Logger
}

func shouldNotLog(currentLevel zerolog.Level, levelToLogAt zerolog.Level) bool {
	// Don't log if logger level is above the threshold
	return currentLevel > levelToLogAt
}

func (l *loggingRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	LogRequest(request, l.logger)
	response, err := l.next.RoundTrip(request)
	if err != nil {
		l.logger.WithLevel(defaultNetworkLogLevel).Err(err).Msgf("< request [%p] failed", request)
		return response, err
	}
	LogResponse(response, l.logger)
	return response, nil
}

func LogRequest(r *http.Request, logger *zerolog.Logger) {
	if shouldNotLog(logger.GetLevel(), defaultNetworkLogLevel) {
		return
	}

	logPrefixRequest := fmt.Sprintf("> request [%p]:", r)
	logger.WithLevel(defaultNetworkLogLevel).Msgf("%s %s %s", logPrefixRequest, r.Method, r.URL.String())
	logger.WithLevel(defaultNetworkLogLevel).Msgf("%s header: %v", logPrefixRequest, r.Header)
}

func LogResponse(response *http.Response, logger *zerolog.Logger) {
	if shouldNotLog(logger.GetLevel(), defaultNetworkLogLevel) {
		return
	}

	if response != nil {
		logPrefixResponse := fmt.Sprintf("< response [%p]:", response.Request)
		logger.WithLevel(defaultNetworkLogLevel).Msgf("%s %s", logPrefixResponse, response.Status)
		logger.WithLevel(defaultNetworkLogLevel).Msgf("%s header: %v", logPrefixResponse, response.Header)
	}
}
