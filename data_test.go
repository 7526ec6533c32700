package arquery

import (
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func dataGateway(t *testing.T) *Gateway {
	return newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/bin":
			_, _ = w.Write([]byte{0x00, 0x01, 0xff})
		case "/doc":
			_, _ = w.Write([]byte(`{"name":"arweave","height":1224045}`))
		case "/txt":
			_, _ = w.Write([]byte("hello arweave"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("Not Found."))
		}
	})
}

func TestDataQuery_Buffer(t *testing.T) {
	d := New(dataGateway(t), nil).Data()
	data, err := d.Buffer("bin")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xff}, data)
}

func TestDataQuery_Text(t *testing.T) {
	d := New(dataGateway(t), nil).Data()
	text, err := d.Text("txt")
	assert.NoError(t, err)
	assert.Equal(t, "hello arweave", text)
}

func TestDataQuery_JSON(t *testing.T) {
	d := New(dataGateway(t), nil).Data()

	doc := struct {
		Name   string `json:"name"`
		Height int64  `json:"height"`
	}{}
	assert.NoError(t, d.JSON("doc", &doc))
	assert.Equal(t, "arweave", doc.Name)
	assert.Equal(t, int64(1224045), doc.Height)

	var v interface{}
	err := d.JSON("txt", &v)
	assert.ErrorIs(t, err, ErrParse)
	parseErr := &ParseError{}
	assert.True(t, errors.As(err, &parseErr))
	assert.Nil(t, v)
}

func TestDataQuery_NotFound(t *testing.T) {
	d := New(dataGateway(t), nil).Data()
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(endpointData, "404"))

	data, err := d.Buffer("missing")
	assert.Nil(t, data)
	reqErr := &RequestError{}
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "Not Found.", reqErr.Body)
	assert.ErrorIs(t, err, ErrRequest)

	text, err := d.Text("missing")
	assert.Equal(t, "", text)
	assert.ErrorIs(t, err, ErrRequest)

	var v interface{}
	assert.ErrorIs(t, d.JSON("missing", &v), ErrRequest)

	assert.Equal(t, before+3, testutil.ToFloat64(requestsTotal.WithLabelValues(endpointData, "404")))
}

func TestDataQuery_Unreachable(t *testing.T) {
	gw := &Gateway{Protocol: "http", Host: "127.0.0.1", Port: 1}
	_, err := New(gw, nil).Data().Buffer("any")
	reqErr := &RequestError{}
	assert.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 0, reqErr.StatusCode)
	assert.NotNil(t, reqErr.Err)
}

func statusGateway(t *testing.T, status int, body string) *Gateway {
	return newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestDataQuery_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantBody string
	}{
		{name: "multiple choices", status: http.StatusMultipleChoices, wantBody: "not a success"},
		{name: "not modified", status: http.StatusNotModified, wantBody: ""}, // 304 carries no body
		{name: "custom 3xx", status: 399, wantBody: "not a success"},
		{name: "bad request", status: http.StatusBadRequest, wantBody: "not a success"},
		{name: "bad gateway", status: http.StatusBadGateway, wantBody: "not a success"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(statusGateway(t, tt.status, "not a success"), nil).Data()

			data, err := d.Buffer("id")
			assert.Nil(t, data)
			reqErr := &RequestError{}
			assert.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tt.status, reqErr.StatusCode)
			assert.Equal(t, tt.wantBody, reqErr.Body)

			text, err := d.Text("id")
			assert.Equal(t, "", text)
			assert.ErrorIs(t, err, ErrRequest)

			var v interface{}
			assert.ErrorIs(t, d.JSON("id", &v), ErrRequest)
		})
	}
}

func TestIsSuccess(t *testing.T) {
	for _, code := range []int{200, 201, 204, 299} {
		assert.True(t, isSuccess(code), code)
	}
	for _, code := range []int{0, 199, 300, 304, 399, 404, 500} {
		assert.False(t, isSuccess(code), code)
	}
}
