// Package viewstate holds the console's navigation state: which page is
// active and whether the navigation overlay is open.
package viewstate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bod/internal/common"
)

// Item is a navigable page.
type Item string

const (
	Dashboard Item = "dashboard"
	Users     Item = "users"
	Posts     Item = "posts"
	Albums    Item = "albums"
	Todos     Item = "todos"
)

// Items lists the pages in menu order.
func Items() []Item {
	return []Item{Dashboard, Users, Posts, Albums, Todos}
}

// Label is the menu caption.
func (i Item) Label() string {
	if i == "" {
		return ""
	}
	return strings.ToUpper(string(i[:1])) + string(i[1:])
}

// ParseItem maps a page name, case-insensitively, to its Item.
func ParseItem(name string) (Item, error) {
	want := Item(strings.ToLower(strings.TrimSpace(name)))
	for _, it := range Items() {
		if it == want {
			return it, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownPage, name)
}

// State is a snapshot of the view state.
type State struct {
	ActiveItem     Item
	MobileMenuOpen bool
}

// Store owns the view state. The zero value is not ready; use New.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New starts on the dashboard with the overlay closed.
func New() *Store {
	return &Store{state: State{ActiveItem: Dashboard}}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetActiveItem switches page and closes the overlay.
func (s *Store) SetActiveItem(item Item) error {
	if _, err := ParseItem(string(item)); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.ActiveItem = item
	s.state.MobileMenuOpen = false
	s.mu.Unlock()
	return nil
}

func (s *Store) ToggleMobileMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.MobileMenuOpen = !s.state.MobileMenuOpen
	return s.state.MobileMenuOpen
}

func (s *Store) SetMobileMenu(open bool) {
	s.mu.Lock()
	s.state.MobileMenuOpen = open
	s.mu.Unlock()
}
