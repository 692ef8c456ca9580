package attendancetype

// adminTransitions enumerates the status moves an admin review action may
// perform. Verifying or dismissing an already-reviewed record is allowed so
// repeated admin actions stay idempotent or flip the decision. Returning a
// record to pending is never an admin move; only a fresh ward posting
// resets a record to pending.
var adminTransitions = map[string]map[string]bool{
	StatusPending:   {StatusVerified: true, StatusDismissed: true},
	StatusVerified:  {StatusVerified: true, StatusDismissed: true},
	StatusDismissed: {StatusDismissed: true, StatusVerified: true},
}

func isAllowedAdminTransition(from, to string) bool {
	return adminTransitions[from][to]
}
