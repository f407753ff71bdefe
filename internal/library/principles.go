package library

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// Principle is one named coaching concept from the principles-of-play
// reference catalogue.
type Principle struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PrincipleCatalogue groups the principles of play by category.
type PrincipleCatalogue struct {
	Attacking  []Principle `json:"attacking"`
	Defending  []Principle `json:"defending"`
	Transition []Principle `json:"transition"`
}

var (
	principlesOnce sync.Once
	principles     PrincipleCatalogue
)

// Principles returns the embedded principles-of-play catalogue.
func Principles() PrincipleCatalogue {
	principlesOnce.Do(func() {
		data, err := dataFS.ReadFile("data/principles_of_play.json")
		if err != nil {
			panic("library: embedded principles catalogue missing: " + err.Error())
		}
		if err := json.Unmarshal(data, &principles); err != nil {
			panic("library: embedded principles catalogue malformed: " + err.Error())
		}
	})
	return principles
}

// maxFocusPrinciples caps user-selected focus lists.
const maxFocusPrinciples = 6

// DeriveFocusPrinciples validates user-selected principle names against the
// catalogue and buckets them by category. With no selection it defaults to
// the first two principles of each category.
func DeriveFocusPrinciples(selected []string) domain.FocusSet {
	cat := Principles()
	if len(selected) > 0 {
		var fs domain.FocusSet
		n := 0
		for _, name := range selected {
			if n >= maxFocusPrinciples {
				break
			}
			switch {
			case containsPrinciple(cat.Attacking, name):
				fs.Attacking = append(fs.Attacking, name)
			case containsPrinciple(cat.Defending, name):
				fs.Defending = append(fs.Defending, name)
			case containsPrinciple(cat.Transition, name):
				fs.Transition = append(fs.Transition, name)
			default:
				continue // unknown names are dropped, not errors
			}
			n++
		}
		return fs
	}
	return domain.FocusSet{
		Attacking:  principleNames(cat.Attacking, 2),
		Defending:  principleNames(cat.Defending, 2),
		Transition: principleNames(cat.Transition, 2),
	}
}

// SessionPrinciples maps a day's load class and fixture status to the
// principles a session of that kind reinforces.
func SessionPrinciples(load domain.LoadClass, isFixture bool) []string {
	cat := Principles()
	find := func(list []Principle, prefix string) string {
		for _, p := range list {
			if strings.HasPrefix(p.Name, prefix) {
				return p.Name
			}
		}
		return prefix
	}
	if isFixture {
		return []string{
			find(cat.Attacking, "Penetration"),
			find(cat.Attacking, "Support"),
			find(cat.Transition, "Transition to Attack"),
			find(cat.Transition, "Transition to Defend"),
			find(cat.Defending, "Pressure"),
			find(cat.Defending, "Compactness"),
		}
	}
	switch load {
	case domain.LoadHigh:
		return []string{
			find(cat.Attacking, "Penetration"),
			find(cat.Attacking, "Mobility"),
			find(cat.Defending, "Pressure"),
			find(cat.Defending, "Cover"),
			find(cat.Transition, "Transition to Attack (Positive Transition)"),
		}
	case domain.LoadMedium:
		return []string{
			find(cat.Attacking, "Support"),
			find(cat.Attacking, "Width"),
			find(cat.Defending, "Balance"),
			find(cat.Defending, "Compactness"),
			find(cat.Transition, "Transition to Defend (Negative Transition)"),
		}
	}
	// Low / Recovery
	return []string{
		find(cat.Defending, "Control/Restraint"),
		find(cat.Defending, "Compactness"),
		find(cat.Attacking, "Support"),
		find(cat.Transition, "Transition to Defend (Negative Transition)"),
	}
}

func containsPrinciple(list []Principle, name string) bool {
	for _, p := range list {
		if p.Name == name {
			return true
		}
	}
	return false
}

func principleNames(list []Principle, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	out := make([]string, 0, n)
	for _, p := range list[:n] {
		out = append(out, p.Name)
	}
	return out
}
