package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes two bodies found overlapping during one simulation frame:
// both identities, the contact point, the contact normal (from A toward B) and
// the collision impulse magnitude. A Contact is built fresh every frame the
// pair is observed and never mutated afterwards; the contact passed to an end
// handler is the one cached from the last frame the pair was still touching.
type Contact struct {
	BodyA, BodyB *Body
	Point        rl.Vector2
	Normal       rl.Vector2
	Impulse      float32
}

// ContactPair is the canonical key for an unordered pair of distinct bodies:
// the two identities ordered low/high, so MakePair(a, b) and MakePair(b, a)
// compare equal and hash together.
type ContactPair struct {
	lo, hi uint64
}

// MakePair returns the canonical pair for a and b. A body never pairs with
// itself; such calls report ok=false instead of producing a degenerate key.
func MakePair(a, b *Body) (ContactPair, bool) {
	if a == nil || b == nil || a.id == b.id {
		return ContactPair{}, false
	}
	if a.id < b.id {
		return ContactPair{lo: a.id, hi: b.id}, true
	}
	return ContactPair{lo: b.id, hi: a.id}, true
}

// ContactDelegate receives begin and end notifications from a world's contact
// pass. Both calls run synchronously inside Step, so an implementation may
// mutate the scene (including removing a body it was just told about); the
// world dispatches from snapshots and tolerates that.
type ContactDelegate interface {
	OnContactBegin(c *Contact)
	OnContactEnd(c *Contact)
}

// NoopContactDelegate ignores all contact events. Embed it to implement only
// one side of ContactDelegate.
type NoopContactDelegate struct{}

func (NoopContactDelegate) OnContactBegin(*Contact) {}
func (NoopContactDelegate) OnContactEnd(*Contact)   {}

// contactState tracks which pairs touched this frame versus last frame. One
// instance is owned by each World; nothing here is shared across worlds, so
// scenes simulate independently.
type contactState struct {
	active   map[ContactPair]struct{}
	previous map[ContactPair]struct{}
	cache    map[ContactPair]*Contact
}

func newContactState() contactState {
	return contactState{
		active:   make(map[ContactPair]struct{}),
		previous: make(map[ContactPair]struct{}),
		cache:    make(map[ContactPair]*Contact),
	}
}

// observe records that pair is touching this frame, caching c as the pair's
// current contact, and reports whether this is the pair's first frame in
// contact (a begin event).
func (s *contactState) observe(pair ContactPair, c *Contact) bool {
	s.active[pair] = struct{}{}
	s.cache[pair] = c
	_, continuing := s.previous[pair]
	return !continuing
}

// rotate finishes the frame: pairs that were touching last frame but not this
// one are end events, each carrying its cached contact (evicted here; a pair
// with no cached contact is dropped silently). The active set then becomes the
// previous set and a fresh empty active set starts the next frame. After
// rotate, the cache holds exactly the pairs still in contact.
func (s *contactState) rotate() []*Contact {
	var ended []*Contact
	for pair := range s.previous {
		if _, still := s.active[pair]; still {
			continue
		}
		if c, ok := s.cache[pair]; ok {
			delete(s.cache, pair)
			ended = append(ended, c)
		}
	}
	s.previous = s.active
	s.active = make(map[ContactPair]struct{})
	return ended
}

// reset drops all contact state: active, previous and cached contacts. Used
// when bodies are removed in bulk and stale end events would be meaningless.
func (s *contactState) reset() {
	s.active = make(map[ContactPair]struct{})
	s.previous = make(map[ContactPair]struct{})
	s.cache = make(map[ContactPair]*Contact)
}
