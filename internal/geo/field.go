package geo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/rm-hull/trip-cost-calculator/internal/models"
)

type FieldState int

const (
	Idle FieldState = iota
	Searching
	Suggested
	Resolved
)

func (s FieldState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Suggested:
		return "suggested"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("FieldState(%d)", int(s))
	}
}

var ErrNoSuggestion = errors.New("no such suggestion")

// Field tracks one location input through idle → searching → suggested →
// resolved. Every transition bumps the generation, and search results
// carrying an older generation are discarded, so a slow response can never
// overwrite a newer one.
type Field struct {
	geocoder Geocoder
	limit    int

	mu          sync.Mutex
	query       string
	state       FieldState
	generation  uint64
	suggestions []models.Suggestion
	coords      *models.Coordinates
}

func NewField(geocoder Geocoder, limit int) *Field {
	return &Field{geocoder: geocoder, limit: limit}
}

// Type records new input text and drops any resolved coordinates. It
// returns the generation a search for this text must present to Apply, and
// whether the text is long enough to search for at all.
func (f *Field) Type(query string) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.query = query
	f.coords = nil
	f.suggestions = nil
	f.generation++

	if len([]rune(strings.TrimSpace(query))) < MinQueryLength {
		f.state = Idle
		return f.generation, false
	}
	f.state = Searching
	return f.generation, true
}

// Apply delivers search results for the given generation. It reports
// false, leaving the field untouched, when the results are stale.
func (f *Field) Apply(gen uint64, results []models.Suggestion) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation || f.state != Searching {
		return false
	}
	f.generation++
	f.suggestions = results
	if len(results) == 0 {
		f.state = Idle
	} else {
		f.state = Suggested
	}
	return true
}

// Fail ends a search that errored. The error is logged only; the field
// falls back to idle if the search was still current.
func (f *Field) Fail(gen uint64, err error) {
	log.Printf("place search for generation %d failed: %v", gen, err)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen == f.generation && f.state == Searching {
		f.generation++
		f.state = Idle
	}
}

// Search runs the place search for the given generation and applies the
// result.
func (f *Field) Search(ctx context.Context, gen uint64) bool {
	f.mu.Lock()
	query := f.query
	f.mu.Unlock()

	results, err := f.geocoder.Search(ctx, query, f.limit)
	if err != nil {
		f.Fail(gen, err)
		return false
	}
	return f.Apply(gen, results)
}

// Select resolves the field to the i-th suggestion.
func (f *Field) Select(i int) (models.Coordinates, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Suggested || i < 0 || i >= len(f.suggestions) {
		return models.Coordinates{}, ErrNoSuggestion
	}
	return f.resolve(f.suggestions[i])
}

func (f *Field) resolve(s models.Suggestion) (models.Coordinates, error) {
	coords, err := s.Coordinates()
	if err != nil {
		return models.Coordinates{}, err
	}
	f.generation++
	f.query = s.DisplayName
	f.coords = &coords
	f.suggestions = nil
	f.state = Resolved
	return coords, nil
}

// Blur handles the input losing focus without an explicit selection: the
// first suggestion is taken if there is one, otherwise a single-result
// search is run for the typed text. It reports whether the field ends up
// resolved. Lookup failures are logged and leave the field unresolved.
func (f *Field) Blur(ctx context.Context) bool {
	f.mu.Lock()
	switch f.state {
	case Resolved:
		f.mu.Unlock()
		return true
	case Suggested:
		_, err := f.resolve(f.suggestions[0])
		f.mu.Unlock()
		if err != nil {
			log.Printf("failed to resolve %q: %v", f.Query(), err)
			return false
		}
		return true
	}

	query := f.query
	if len([]rune(strings.TrimSpace(query))) < MinQueryLength {
		f.mu.Unlock()
		return false
	}
	f.generation++
	f.state = Searching
	gen := f.generation
	f.mu.Unlock()

	results, err := f.geocoder.Search(ctx, query, 1)
	if err != nil {
		f.Fail(gen, err)
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		return false
	}
	if len(results) == 0 {
		f.generation++
		f.state = Idle
		return false
	}
	if _, err := f.resolve(results[0]); err != nil {
		log.Printf("failed to resolve %q: %v", query, err)
		f.state = Idle
		return false
	}
	return true
}

func (f *Field) State() FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Field) Generation() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation
}

func (f *Field) Query() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query
}

func (f *Field) Suggestions() []models.Suggestion {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Suggestion(nil), f.suggestions...)
}

func (f *Field) Coordinates() (models.Coordinates, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.coords == nil {
		return models.Coordinates{}, false
	}
	return *f.coords, true
}
