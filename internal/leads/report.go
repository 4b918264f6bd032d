package leads

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// WriteReport prints the subscriber count and the limit most recent demo
// requests, newest first.
func (s *Store) WriteReport(ctx context.Context, w io.Writer, limit int) error {
	subscribers, err := s.CountSubscribers(ctx)
	if err != nil {
		return err
	}
	leads, err := s.ListDemoRequests(ctx, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "newsletter subscribers: %d\n\n", subscribers)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tID\tCOMPANY\tNAME\tEMAIL\tCHALLENGES")
	for _, l := range leads {
		r := l.Request
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.CreatedAt.Format(time.DateTime), l.ID, r.Company, r.Name, r.Email,
			orDash(strings.Join(r.Challenges, ", ")))
	}
	return tw.Flush()
}

// WriteLead prints one demo request in full, in the same layout as the sales
// email. It returns ErrNotFound for an unknown id.
func (s *Store) WriteLead(ctx context.Context, w io.Writer, id string) error {
	lead, err := s.GetDemoRequest(ctx, id)
	if err != nil {
		return err
	}
	subject, text := demoRequestEmail(lead)
	_, err = fmt.Fprintf(w, "%s\n\n%s", subject, text)
	return err
}
