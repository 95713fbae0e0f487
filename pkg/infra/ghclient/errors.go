package ghclient

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// classifyAPIError folds a go-github error into the domain error
// taxonomy so that callers can branch on sentinel errors instead of
// HTTP details. The original error text is kept as a value on the
// wrapped error.
func classifyAPIError(err error) error {
	if err == nil {
		return nil
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return goerr.Wrap(types.ErrRateLimited, "primary rate limit exhausted",
			goerr.V("reset", rateErr.Rate.Reset.Time))
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return goerr.Wrap(types.ErrRateLimited, "secondary rate limit triggered",
			goerr.V("retry_after", abuseErr.GetRetryAfter()))
	}

	// A 202 means the resource is still being generated server side,
	// e.g. a fork that has not materialized yet.
	var acceptedErr *github.AcceptedError
	if errors.As(err, &acceptedErr) {
		return goerr.Wrap(types.ErrTransient, "resource is still being generated")
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return classifyErrorResponse(ghErr)
	}

	// DNS failures, connection resets and other transport level errors.
	return goerr.Wrap(types.ErrTransient, "github api request failed",
		goerr.V("cause", err.Error()))
}

func classifyErrorResponse(ghErr *github.ErrorResponse) error {
	status := 0
	if ghErr.Response != nil {
		status = ghErr.Response.StatusCode
	}
	msg := strings.ToLower(ghErr.Message)

	switch {
	case status == http.StatusNotFound:
		return goerr.Wrap(types.ErrNotFound, "resource not found",
			goerr.V("message", ghErr.Message))

	case status == http.StatusConflict:
		return goerr.Wrap(types.ErrConflict, "resource conflicts with existing state",
			goerr.V("message", ghErr.Message))

	case status == http.StatusUnprocessableEntity:
		if strings.Contains(msg, "already") {
			return goerr.Wrap(types.ErrAlreadyExists, "resource already exists",
				goerr.V("message", ghErr.Message))
		}
		if containsAny(msg, "not supported", "not available", "not enabled", "advanced security") {
			return goerr.Wrap(types.ErrUnsupported, "feature is not supported for this repository",
				goerr.V("message", ghErr.Message))
		}
		return goerr.Wrap(types.ErrValidation, "request rejected as invalid",
			goerr.V("message", ghErr.Message))

	case status == http.StatusTooManyRequests:
		return goerr.Wrap(types.ErrRateLimited, "rate limit exhausted",
			goerr.V("message", ghErr.Message))

	case status == http.StatusForbidden:
		if strings.Contains(msg, "rate limit") {
			return goerr.Wrap(types.ErrRateLimited, "rate limit exhausted",
				goerr.V("message", ghErr.Message))
		}
		return goerr.Wrap(types.ErrUnsupported, "access to the feature is forbidden",
			goerr.V("message", ghErr.Message))

	case status == http.StatusBadRequest:
		return goerr.Wrap(types.ErrValidation, "malformed request",
			goerr.V("message", ghErr.Message))

	case status >= http.StatusInternalServerError:
		return goerr.Wrap(types.ErrTransient, "github api server error",
			goerr.V("status", status), goerr.V("message", ghErr.Message))
	}

	return goerr.Wrap(types.ErrTransient, "unexpected github api error",
		goerr.V("status", status), goerr.V("message", ghErr.Message))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// featureInactive reports whether an error from an alert listing API
// means the scanning feature is simply not active on the repository.
// Those cases read as zero open alerts rather than failures.
func featureInactive(err error) bool {
	return errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrUnsupported)
}
