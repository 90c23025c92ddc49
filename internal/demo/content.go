// Package demo holds the sample chat content both hosts put in their panes.
package demo

// Pane is the text of one pane.
type Pane struct {
	Title string
	Body  []string
}

// Content returns the left, center and right panes of a small chat client:
// a channel list, the open channel and its member list.
func Content() (left, center, right Pane) {
	left = Pane{
		Title: "Channels",
		Body:  []string{"# general", "# random", "# dev", "# design", "", "Direct messages", "@ alice", "@ bob"},
	}
	center = Pane{
		Title: "# general",
		Body: []string{
			"alice: morning all",
			"bob: the drawers slide now",
			"alice: try flinging the center pane",
			"carol: tap the strip on the edge to close",
		},
	}
	right = Pane{
		Title: "Members",
		Body:  []string{"alice (online)", "bob (online)", "carol (away)", "dave (offline)"},
	}
	return left, center, right
}
