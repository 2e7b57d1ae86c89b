package ai

// FailureReason tells the caller why a dispatch produced no text.
type FailureReason string

const (
	// FailureOverloaded means every attempt hit backend overload.
	FailureOverloaded FailureReason = "overloaded"
	// FailureOther covers any terminal backend error.
	FailureOther FailureReason = "other"
)

// User-facing messages carried by failed results.
const (
	MessageOther      = "An error occurred while generating your trip. Please try again."
	MessageOverloaded = "Our AI services are currently experiencing high traffic. Please try again shortly!"
)

// DispatchResult is the outcome of Dispatcher.Send.
// When OK is true Text holds the raw backend reply; otherwise Reason and
// Message describe the failure. Attempts counts backend calls made.
type DispatchResult struct {
	OK       bool
	Text     string
	Reason   FailureReason
	Message  string
	Attempts int
}

func failure(reason FailureReason, attempts int) DispatchResult {
	msg := MessageOther
	if reason == FailureOverloaded {
		msg = MessageOverloaded
	}
	return DispatchResult{Reason: reason, Message: msg, Attempts: attempts}
}
