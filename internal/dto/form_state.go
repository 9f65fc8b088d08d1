package dto

import "github.com/GabrielVilchis-215460/nextjs-practice/internal/core/domain"

// FormStateResponse is returned with 422 when an invoice form fails validation.
type FormStateResponse struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

// ToFormStateResponse converts a domain.FormState to FormStateResponse DTO
func ToFormStateResponse(state domain.FormState) FormStateResponse {
	errs := state.Errors
	if errs == nil {
		errs = map[string][]string{}
	}
	return FormStateResponse{Errors: errs, Message: state.Message}
}

// ErrorBoundaryResponse is the generic failure screen of a route segment.
// Retry re-renders the segment; it never replays the failed mutation.
type ErrorBoundaryResponse struct {
	Error string `json:"error"`
	Retry string `json:"retry"`
}
