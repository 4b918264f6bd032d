package demo

import (
	"context"
	"encoding/gob"

	"github.com/alexedwards/scs/v2"
)

const draftKey = "demo.draft"

func init() {
	gob.Register(Request{})
}

// Drafts keeps a visitor's in-progress demo request in their session. The
// session middleware of the manager must wrap every request using it.
type Drafts struct {
	sessions *scs.SessionManager
}

func NewDrafts(sessions *scs.SessionManager) *Drafts {
	return &Drafts{sessions: sessions}
}

// Get returns the saved draft, or an empty request if there is none.
func (d *Drafts) Get(ctx context.Context) Request {
	req, _ := d.sessions.Get(ctx, draftKey).(Request)
	return req
}

func (d *Drafts) Save(ctx context.Context, req Request) {
	d.sessions.Put(ctx, draftKey, req)
}

// Clear drops the draft, typically after a successful submit.
func (d *Drafts) Clear(ctx context.Context) {
	d.sessions.Remove(ctx, draftKey)
}

// Toggle flips challenge c in the saved draft and returns the updated draft.
func (d *Drafts) Toggle(ctx context.Context, c string) (Request, error) {
	req := d.Get(ctx)
	if err := req.ToggleChallenge(c); err != nil {
		return req, err
	}
	d.Save(ctx, req)
	return req, nil
}
