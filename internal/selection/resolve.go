package selection

import (
	"github.com/egoavara/spin-hub/internal/hub"
	"github.com/egoavara/spin-hub/internal/log"
	"github.com/egoavara/spin-hub/internal/search"
)

// Outcome says how a resolution ended
type Outcome int

const (
	// NoMatches means nothing matched the query
	NoMatches Outcome = iota
	// Selected means exactly one entry was chosen
	Selected
	// Cancelled means the user aborted the choice among several matches
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Cancelled:
		return "cancelled"
	default:
		return "no-matches"
	}
}

// Result is the outcome of Resolve. Entry is set only when Outcome is Selected.
type Result struct {
	Entry   hub.Entry
	Outcome Outcome
	Matches int
}

// OK reports whether an entry was selected
func (r Result) OK() bool {
	return r.Outcome == Selected
}

// Resolve filters entries to the command's category and the given terms, then
//   - returns NoMatches when nothing matches,
//   - returns the single match without prompting,
//   - asks port to choose among several matches, in title order.
func Resolve(entries []hub.Entry, terms []string, category hub.Category, port Port, prompt string) (Result, error) {
	matches := search.Filter(entries, search.Query{Terms: terms, Category: &category})
	log.Debug(log.CatSelect, "resolved matches", "category", category.String(), "terms", terms, "count", len(matches))

	switch len(matches) {
	case 0:
		return Result{Outcome: NoMatches}, nil
	case 1:
		return Result{Entry: matches[0], Outcome: Selected, Matches: 1}, nil
	}

	idx, ok, err := port.Select(prompt, Labels(matches))
	if err != nil {
		return Result{}, err
	}
	if !ok || idx < 0 || idx >= len(matches) {
		log.Info(log.CatSelect, "selection cancelled", "count", len(matches))
		return Result{Outcome: Cancelled, Matches: len(matches)}, nil
	}

	log.Info(log.CatSelect, "selected", "title", matches[idx].Title())
	return Result{Entry: matches[idx], Outcome: Selected, Matches: len(matches)}, nil
}

// Labels renders the choice list shown for entries
func Labels(entries []hub.Entry) []string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		if s := e.ShortSummary(); s != "" {
			labels[i] = e.Title() + " - " + s
		} else {
			labels[i] = e.Title()
		}
	}
	return labels
}
