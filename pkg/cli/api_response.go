package cli

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultAbsentMessage = "Model path does not exist."

	defaultFoundPrefix = "Model files found: "
)

type StatusResponse struct {
	StatusCode    int
	Body          string
	Error         error
	absentMessage string
}

func NewStatusResponse(absentMessage string) func(resp *http.Response, err error) *StatusResponse {
	return func(resp *http.Response, err error) *StatusResponse {
		apiRes := &StatusResponse{
			Error:         err,
			absentMessage: absentMessage,
		}
		if resp == nil {
			return apiRes
		}
		defer resp.Body.Close()

		apiRes.StatusCode = resp.StatusCode
		out, err := io.ReadAll(resp.Body)
		if err != nil {
			apiRes.Error = errors.Wrap(err, "failed to read body")
			return apiRes
		}
		apiRes.Body = string(out)

		if resp.StatusCode != http.StatusOK {
			apiRes.Error = errors.Errorf("probe answered with status %d: %s", resp.StatusCode, strings.TrimSpace(apiRes.Body))
		}
		return apiRes
	}
}

func (resp *StatusResponse) Err() error {
	return resp.Error
}

// PathExists is true for every successful answer other than the absent message.
func (resp *StatusResponse) PathExists() bool {
	return resp.Error == nil && resp.Body != resp.absentMessage
}

// Entries splits a default-formatted found message back into entry names. It
// returns nil when the path is absent or the probe renders a custom template.
func (resp *StatusResponse) Entries() []string {
	if !resp.PathExists() || !strings.HasPrefix(resp.Body, defaultFoundPrefix) {
		return nil
	}

	list := strings.TrimPrefix(resp.Body, defaultFoundPrefix)
	if list == "" {
		return []string{}
	}
	return strings.Split(list, ", ")
}

func (resp *StatusResponse) Print(w io.Writer) error {
	var out string
	switch {
	case resp.Error != nil:
		out = resp.Error.Error()
	case len(resp.Body) == 0:
		return nil
	default:
		out = resp.Body
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return errors.Wrap(err, "failed to write response")
	}
	return nil
}
