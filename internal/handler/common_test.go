package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
)

const InvalidJSON = `{"invalid": json}`

func createJSONRequest(body interface{}) *bytes.Reader {
	var data []byte
	switch v := body.(type) {
	case string:
		data = []byte(v)
	default:
		data, _ = json.Marshal(body)
	}
	return bytes.NewReader(data)
}

func createJSONHTTPRequest(method, url string, body interface{}) *http.Request {
	req := httptest.NewRequest(method, url, createJSONRequest(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
