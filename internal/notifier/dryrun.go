package notifier

import (
	"fmt"

	"github.com/pfrederiksen/conf-schedule/internal/schedule"
)

// DryRunNotifier prints what would be posted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the posts that would be made
func (n *DryRunNotifier) Notify(sessions []*schedule.NewSession) error {
	for i, ns := range sessions {
		post := formatPost(ns)
		fmt.Printf("--- Post %d/%d ---\n", i+1, len(sessions))
		fmt.Println(post)
		fmt.Printf("\n(Length: %d characters)\n\n", len(post))
	}
	return nil
}
