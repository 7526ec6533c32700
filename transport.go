package arquery

import (
	"time"

	"gopkg.in/h2non/gentleman.v2"
)

func newClient(gateway Gateway) *gentleman.Client {
	return gentleman.New().URL(gateway.String())
}

// send performs one round-trip and returns the body of a 2xx answer.
// gentleman's resp.Ok also accepts 3xx, so the status is checked directly.
func send(endpoint string, req *gentleman.Request) (int, []byte, error) {
	start := time.Now()
	resp, err := req.Send()
	if err != nil {
		metricRequest(endpoint, 0, start)
		log.Error("gateway request failed", "endpoint", endpoint, "err", err)
		return 0, nil, &RequestError{Err: err}
	}
	defer resp.Close()

	body := resp.Bytes()
	metricRequest(endpoint, resp.StatusCode, start)
	if !isSuccess(resp.StatusCode) {
		log.Error("gateway request failed", "endpoint", endpoint, "status", resp.StatusCode, "body", string(body))
		return resp.StatusCode, nil, &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return resp.StatusCode, body, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}
