package repositories

import "context"

// SignupNotifier tells administrators that a new account is waiting for
// activation. Delivery is best effort: signup never fails on a notification
// error.
type SignupNotifier interface {
	NotifySignup(ctx context.Context, adminEmails []string, userEmail string, userName string) error
}
