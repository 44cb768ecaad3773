// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusGone:                ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusPreconditionFailed:  ErrConflict,
	http.StatusTooManyRequests:     ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

// mapHTTPError turns a non-2xx response into one of the package errors.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	reason := remoteReason(resp.Body())
	if sentinel, ok := statusErrors[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}
	if reason == "" {
		reason = http.StatusText(status)
	}
	return fmt.Errorf("http %d: %s", status, reason)
}

// remoteReason extracts "label: message" from a JSON error body and falls
// back to the raw body text.
func remoteReason(body []byte) string {
	if gjson.ValidBytes(body) {
		label := gjson.GetBytes(body, "label").String()
		message := gjson.GetBytes(body, "message").String()
		switch {
		case label != "" && message != "":
			return label + ": " + message
		case label != "":
			return label
		case message != "":
			return message
		}
	}
	return strings.TrimSpace(string(body))
}
