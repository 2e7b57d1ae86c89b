package ai

import (
	"errors"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// overloadedMarker is matched case-sensitively.
const overloadedMarker = "model is overloaded"

// IsOverloaded reports whether err signals temporary backend overload.
// Backends report it inconsistently, so every known shape is checked:
// HTTP 503 on Google, gax and OpenAI error types, gRPC Unavailable,
// and the marker text anywhere in the error chain or a nested response body.
func IsOverloaded(err error) bool {
	if err == nil {
		return false
	}
	if overloadStatus(err) {
		return true
	}
	if strings.Contains(err.Error(), overloadedMarker) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if strings.Contains(gerr.Message, overloadedMarker) || strings.Contains(gerr.Body, overloadedMarker) {
			return true
		}
	}
	var oerr *openai.APIError
	if errors.As(err, &oerr) && strings.Contains(oerr.Message, overloadedMarker) {
		return true
	}
	return false
}

func overloadStatus(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusServiceUnavailable {
		return true
	}
	var aerr *apierror.APIError
	if errors.As(err, &aerr) {
		if aerr.HTTPCode() == http.StatusServiceUnavailable {
			return true
		}
		if s := aerr.GRPCStatus(); s != nil && s.Code() == codes.Unavailable {
			return true
		}
	}
	if s, ok := status.FromError(err); ok && s.Code() == codes.Unavailable {
		return true
	}
	var oerr *openai.APIError
	if errors.As(err, &oerr) && oerr.HTTPStatusCode == http.StatusServiceUnavailable {
		return true
	}
	var rerr *openai.RequestError
	if errors.As(err, &rerr) && rerr.HTTPStatusCode == http.StatusServiceUnavailable {
		return true
	}
	return false
}
