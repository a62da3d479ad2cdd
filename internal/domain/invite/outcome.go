package invite

// SkippedInvite records one identity the batch did not process, with a
// user-presentable reason.
type SkippedInvite struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BatchOutcome is the per-call result of an invite batch. Every submitted
// email lands in exactly one of the two lists; assembly order follows task
// completion, not input order.
type BatchOutcome struct {
	Processed []string        `json:"processed"`
	Skipped   []SkippedInvite `json:"skipped"`
}

// ItemResult is the settled outcome of one identity's pipeline run: either
// processed or skipped with a reason, never both.
type ItemResult struct {
	email   string
	skipped bool
	reason  string
}

// Processed tags an identity whose account and paired record were created
func Processed(email string) ItemResult {
	return ItemResult{email: email}
}

// Skipped tags an identity that was not processed, with a fixed reason
func Skipped(email, reason string) ItemResult {
	return ItemResult{email: email, skipped: true, reason: reason}
}

// Add folds one settled item into the outcome
func (o *BatchOutcome) Add(r ItemResult) {
	if r.skipped {
		o.Skipped = append(o.Skipped, SkippedInvite{Email: r.email, Reason: r.reason})
		return
	}
	o.Processed = append(o.Processed, r.email)
}
