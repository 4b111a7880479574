package service

import (
	"strings"
	"sync"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// History is the session's address bar: the current location plus a stream
// of origin-tagged change notifications.
type History interface {
	Location() string
	// Replace overwrites the current entry without adding a back-stack entry.
	Replace(location string)
	// Listen registers fn for every location change and returns a func that
	// removes it.
	Listen(fn func(entity.NavigationEvent)) (unsubscribe func())
}

// Transition describes one change of the in-memory filter state.
type Transition struct {
	Origin   entity.NavigationOrigin
	Previous entity.FilterState
	Current  entity.FilterState
	Location string
	// Written is true when the transition replaced the history entry.
	Written bool
}

// NavigationService keeps a FilterState and the history location consistent
// in both directions. Only Update writes to the history; changes arriving
// from the history only ever update the state, so the two cannot trigger
// each other in a loop.
type NavigationService struct {
	history History
	log     *logrus.Logger

	mu          sync.Mutex
	state       entity.FilterState
	unsubscribe func()
	onChange    []func(Transition)
}

// NewNavigationService decodes the initial state from the history's current
// location and starts following external navigation.
func NewNavigationService(history History, log *logrus.Logger) *NavigationService {
	_, query := converter.SplitLocation(history.Location())
	s := &NavigationService{
		history: history,
		log:     log,
		state:   converter.DecodeFilterQuery(query),
	}
	s.unsubscribe = history.Listen(s.HandleNavigation)

	s.log.WithFields(logrus.Fields{
		"origin":   entity.OriginInitial,
		"location": history.Location(),
	}).Debug("Filter state initialized")

	return s
}

// State returns a copy of the current filter state.
func (s *NavigationService) State() entity.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Canonical()
}

// OnChange registers fn to run after every state transition.
func (s *NavigationService) OnChange(fn func(Transition)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Update merges patch into the current state and replaces the history entry
// with the re-encoded location. The write is skipped when the location would
// not change.
func (s *NavigationService) Update(patch entity.FilterPatch) Transition {
	s.mu.Lock()
	previous := s.state
	next := previous.Merge(patch).Canonical()
	s.state = next

	// Fragments are not part of the filter address.
	current, _, _ := strings.Cut(s.history.Location(), "#")
	path, _ := converter.SplitLocation(current)
	location := converter.BuildLocation(path, next)
	written := location != current
	s.mu.Unlock()

	// Replace may notify listeners synchronously, including this service;
	// the programmatic origin tag makes HandleNavigation ignore it.
	if written {
		s.history.Replace(location)
	}

	t := Transition{
		Origin:   entity.OriginProgrammatic,
		Previous: previous,
		Current:  next,
		Location: location,
		Written:  written,
	}
	s.notify(t)
	return t
}

// HandleNavigation reacts to a history change. Programmatic events are the
// echo of our own writes and are ignored; external ones replace the state
// wholesale from the new location without writing back.
func (s *NavigationService) HandleNavigation(event entity.NavigationEvent) {
	if event.Origin != entity.OriginExternal {
		return
	}

	_, query := converter.SplitLocation(event.Location)
	s.mu.Lock()
	previous := s.state
	s.state = converter.DecodeFilterQuery(query)
	current := s.state
	s.mu.Unlock()

	s.notify(Transition{
		Origin:   entity.OriginExternal,
		Previous: previous,
		Current:  current,
		Location: event.Location,
	})
}

// Close stops following the history. The state is discarded with the service.
func (s *NavigationService) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (s *NavigationService) notify(t Transition) {
	s.log.WithFields(logrus.Fields{
		"origin":   t.Origin,
		"location": t.Location,
		"written":  t.Written,
	}).Debug("Filter state changed")

	s.mu.Lock()
	listeners := append([]func(Transition){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
}
