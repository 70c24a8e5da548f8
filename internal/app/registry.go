package app

import (
	"crypto/rand"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/lulu73211/ia-quizz-arena/internal/domain"
)

// roomCodeAlphabet leaves out easily-confused glyphs (0/O, 1/I).
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const roomCodeLength = 6

// RoomRegistry owns the code→room mapping for this process. It only guards
// the map itself; operations on unrelated rooms never serialize against each
// other.
type RoomRegistry struct {
	bc    Broadcaster
	clock clockwork.Clock

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRoomRegistry(bc Broadcaster, clock clockwork.Clock) *RoomRegistry {
	return &RoomRegistry{
		bc:    bc,
		clock: clock,
		rooms: make(map[string]*Room),
	}
}

// Create allocates a collision-free code and inserts a new lobby room for the
// given quiz. Allocation retries until the code is unique among live rooms;
// the code space dwarfs any realistic room count.
func (g *RoomRegistry) Create(quiz domain.Quiz, ownerID, ownerConnID string) *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := generateRoomCode()
	for {
		if _, taken := g.rooms[code]; !taken {
			break
		}
		code = generateRoomCode()
	}

	room := newRoom(code, quiz, ownerID, ownerConnID, g.bc, g.clock)
	g.rooms[code] = room
	return room
}

// Get looks up a live room by code.
func (g *RoomRegistry) Get(code string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[code]
	return room, ok
}

// Remove evicts a room. No documented flow calls it: finished rooms are kept
// for the process lifetime so late getRoomInfo requests still resolve.
func (g *RoomRegistry) Remove(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.rooms, code)
}

// ForEach visits every live room. The visit happens outside the registry
// lock so room operations inside fn cannot block unrelated lookups.
func (g *RoomRegistry) ForEach(fn func(*Room)) {
	g.mu.RLock()
	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}
	g.mu.RUnlock()

	for _, room := range rooms {
		fn(room)
	}
}

func generateRoomCode() string {
	b := make([]byte, roomCodeLength)
	_, _ = rand.Read(b)
	code := make([]byte, roomCodeLength)
	for i := range code {
		code[i] = roomCodeAlphabet[int(b[i])%len(roomCodeAlphabet)]
	}
	return string(code)
}
