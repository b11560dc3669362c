package replay

import (
	"sync"

	"codescanner/pkg/domain"
)

// Permissions answers camera access requests with a fixed decision.
type Permissions struct {
	mu     sync.Mutex
	status domain.AuthorizationStatus
	grant  bool
}

// NewPermissions starts at status. When status is NotDetermined a request
// is answered with grant.
func NewPermissions(status domain.AuthorizationStatus, grant bool) *Permissions {
	return &Permissions{status: status, grant: grant}
}

func (p *Permissions) Status() domain.AuthorizationStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.status
}

// RequestAccess answers asynchronously, the way a platform prompt does.
func (p *Permissions) RequestAccess(callback func(granted bool)) {
	go func() {
		p.mu.Lock()
		granted := p.grant
		if granted {
			p.status = domain.AuthorizationAuthorized
		} else {
			p.status = domain.AuthorizationDenied
		}
		p.mu.Unlock()

		callback(granted)
	}()
}

// Set changes the status, e.g. after the user edits settings.
func (p *Permissions) Set(status domain.AuthorizationStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}
