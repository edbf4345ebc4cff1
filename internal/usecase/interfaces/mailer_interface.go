package interfaces

import "context"

//go:generate mockgen -source=mailer_interface.go -destination=mocks/mailer_interface.go -package=mock_interfaces

// IMailer sends transactional email. Settlement treats every send as
// best-effort; a failed send is recorded but never blocks the flow.
type IMailer interface {
	Send(ctx context.Context, to, subject, html string) error
}
