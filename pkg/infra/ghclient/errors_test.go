package ghclient_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/ghclient"
)

func apiError(status int, message string) *github.ErrorResponse {
	return &github.ErrorResponse{
		Response: &http.Response{StatusCode: status},
		Message:  message,
	}
}

func TestClassifyAPIError(t *testing.T) {
	testCases := map[string]struct {
		input error
		want  error
	}{
		"404 maps to not found": {
			input: apiError(http.StatusNotFound, "Not Found"),
			want:  types.ErrNotFound,
		},
		"409 maps to conflict": {
			input: apiError(http.StatusConflict, "Conflict"),
			want:  types.ErrConflict,
		},
		"422 name collision maps to already exists": {
			input: apiError(http.StatusUnprocessableEntity, "Name already exists on this account"),
			want:  types.ErrAlreadyExists,
		},
		"422 feature gap maps to unsupported": {
			input: apiError(http.StatusUnprocessableEntity, "Advanced security is not available for this repository"),
			want:  types.ErrUnsupported,
		},
		"422 otherwise maps to validation": {
			input: apiError(http.StatusUnprocessableEntity, "Validation Failed"),
			want:  types.ErrValidation,
		},
		"403 with rate limit message maps to rate limited": {
			input: apiError(http.StatusForbidden, "API rate limit exceeded for installation ID 123"),
			want:  types.ErrRateLimited,
		},
		"403 otherwise maps to unsupported": {
			input: apiError(http.StatusForbidden, "Dependabot alerts are disabled for this repository."),
			want:  types.ErrUnsupported,
		},
		"429 maps to rate limited": {
			input: apiError(http.StatusTooManyRequests, "too many requests"),
			want:  types.ErrRateLimited,
		},
		"400 maps to validation": {
			input: apiError(http.StatusBadRequest, "Bad Request"),
			want:  types.ErrValidation,
		},
		"500 maps to transient": {
			input: apiError(http.StatusInternalServerError, "Internal Server Error"),
			want:  types.ErrTransient,
		},
		"502 maps to transient": {
			input: apiError(http.StatusBadGateway, "Bad Gateway"),
			want:  types.ErrTransient,
		},
		"primary rate limit error": {
			input: &github.RateLimitError{
				Rate: github.Rate{Reset: github.Timestamp{Time: time.Now().Add(time.Minute)}},
			},
			want: types.ErrRateLimited,
		},
		"secondary rate limit error": {
			input: &github.AbuseRateLimitError{},
			want:  types.ErrRateLimited,
		},
		"202 accepted maps to transient": {
			input: &github.AcceptedError{},
			want:  types.ErrTransient,
		},
		"network error maps to transient": {
			input: errors.New("dial tcp: i/o timeout"),
			want:  types.ErrTransient,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := ghclient.ClassifyAPIErrorForTest(tc.input)
			gt.Error(t, got)
			gt.True(t, errors.Is(got, tc.want))
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		gt.NoError(t, ghclient.ClassifyAPIErrorForTest(nil))
	})
}

func TestIsPermanent(t *testing.T) {
	permanent := []error{
		types.ErrNotFound,
		types.ErrAlreadyExists,
		types.ErrConflict,
		types.ErrValidation,
		types.ErrUnsupported,
	}
	for _, err := range permanent {
		gt.True(t, ghclient.IsPermanentForTest(err))
	}

	retryable := []error{
		types.ErrRateLimited,
		types.ErrTransient,
		errors.New("something else"),
	}
	for _, err := range retryable {
		gt.False(t, ghclient.IsPermanentForTest(err))
	}
}

func TestIsPermanentSeesThroughWrapping(t *testing.T) {
	wrapped := ghclient.ClassifyAPIErrorForTest(apiError(http.StatusNotFound, "Not Found"))
	gt.True(t, ghclient.IsPermanentForTest(wrapped))
}
