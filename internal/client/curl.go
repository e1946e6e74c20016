package client

import (
	"net/http"

	"github.com/moul/http2curl"
)

// Curl renders req as an equivalent curl command line. The body is read and
// put back, so req can still be sent afterwards.
func Curl(req *http.Request) (string, error) {
	if req == nil {
		return "", nil
	}

	command, err := http2curl.GetCurlCommand(req)
	if err != nil {
		return "", err
	}
	return command.String(), nil
}
