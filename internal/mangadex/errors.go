package mangadex

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrCaptchaRequired = errors.New("captcha required")
)

// APIError is one entry of the "errors" array of an error reply.
type APIError struct {
	ID      string `json:"id"`
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Context string `json:"context,omitempty"`
}

type errorResponse struct {
	Result string     `json:"result"`
	Errors []APIError `json:"errors"`
}

// ResponseError is returned for any reply outside the 2xx range.
type ResponseError struct {
	URL        string
	StatusCode int
	Errors     []APIError
	captcha    bool
}

func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("mangadex: %s: status %d", e.URL, e.StatusCode)
	}
	details := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		if apiErr.Detail != "" {
			details = append(details, apiErr.Title+": "+apiErr.Detail)
		} else {
			details = append(details, apiErr.Title)
		}
	}
	return fmt.Sprintf("mangadex: %s: status %d: %s", e.URL, e.StatusCode, strings.Join(details, "; "))
}

func (e *ResponseError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrCaptchaRequired:
		return e.captcha
	}
	return false
}
