package domain

import "testing"

func TestDocumentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from DocumentStatus
		to   DocumentStatus
		want bool
	}{
		{"received to confirmed", StatusReceived, StatusConfirmed, true},
		{"received to pending confirmation", StatusReceived, StatusPendingConfirmation, true},
		{"received to declined", StatusReceived, StatusDeclined, true},
		{"received to rejected", StatusReceived, StatusRejected, true},
		{"received to completed", StatusReceived, StatusCompleted, false},
		{"pending update to confirmed", StatusPendingUpdate, StatusConfirmed, true},
		{"pending update to rejected", StatusPendingUpdate, StatusRejected, false},
		{"pending confirmation to confirmed", StatusPendingConfirmation, StatusConfirmed, true},
		{"pending confirmation to completed", StatusPendingConfirmation, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to pending cancellation", StatusConfirmed, StatusPendingCancellation, true},
		{"confirmed to received", StatusConfirmed, StatusReceived, false},
		{"pending cancellation to cancelled", StatusPendingCancellation, StatusCancelled, true},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"declined is terminal", StatusDeclined, StatusReceived, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"unknown status has no transitions", DocumentStatus("BOGUS"), StatusConfirmed, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestDocumentStatus_IsCancellable(t *testing.T) {
	cancellable := map[DocumentStatus]bool{
		StatusReceived:            true,
		StatusPendingUpdate:       true,
		StatusConfirmed:           true,
		StatusPendingCancellation: true,
	}

	all := []DocumentStatus{
		StatusReceived, StatusPendingUpdate, StatusPendingConfirmation,
		StatusConfirmed, StatusPendingCancellation, StatusCancelled,
		StatusDeclined, StatusRejected, StatusCompleted,
	}
	for _, s := range all {
		if got := s.IsCancellable(); got != cancellable[s] {
			t.Errorf("%s: IsCancellable() = %v, want %v", s, got, cancellable[s])
		}
	}
}
