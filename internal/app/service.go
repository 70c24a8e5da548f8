package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lulu73211/ia-quizz-arena/internal/domain"
)

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// RoomService exposes the session-engine use cases to the transport layer.
// Request/response operations return a payload or an error; fire-and-forget
// operations silently ignore failed preconditions, mirroring the fact that
// those events have no reply channel.
type RoomService struct {
	rooms   *RoomRegistry
	quizzes QuizRepository
}

func NewRoomService(rooms *RoomRegistry, quizzes QuizRepository) *RoomService {
	return &RoomService{rooms: rooms, quizzes: quizzes}
}

// CreateRoom fetches the quiz definition and opens a lobby room for it. The
// fetch is the only blocking wait in the engine; everything after it is
// in-memory.
func (s *RoomService) CreateRoom(ctx context.Context, quizID, ownerID, connID string) (domain.RoomCreated, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.RoomCreated{}, err
	}
	room := s.rooms.Create(quiz, ownerID, connID)
	log.Info().Str("room", room.Code()).Str("quiz", quizID).Msg("room created")
	return domain.RoomCreated{RoomCode: room.Code(), QuizTitle: quiz.Title}, nil
}

// JoinRoom registers a player in a lobby room.
func (s *RoomService) JoinRoom(code, connID, name string) ([]domain.PlayerScore, error) {
	room, ok := s.rooms.Get(code)
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return room.Join(connID, name)
}

// RejoinOwner re-binds the owner connection and returns a resume snapshot.
func (s *RoomService) RejoinOwner(code, connID, userID string) (domain.OwnerSnapshot, error) {
	room, ok := s.rooms.Get(code)
	if !ok {
		return domain.OwnerSnapshot{}, domain.ErrRoomNotFound
	}
	return room.RejoinOwner(connID, userID)
}

// StartQuiz starts the countdown on the first question.
func (s *RoomService) StartQuiz(code, connID string) {
	if room, ok := s.rooms.Get(code); ok {
		room.Start(connID)
	}
}

// SubmitAnswer records a player's answer for the current question.
func (s *RoomService) SubmitAnswer(code, connID string, answerIndex int) {
	if room, ok := s.rooms.Get(code); ok {
		room.SubmitAnswer(connID, answerIndex)
	}
}

// NextQuestion advances the owner's room.
func (s *RoomService) NextQuestion(code, connID string) {
	if room, ok := s.rooms.Get(code); ok {
		room.Next(connID)
	}
}

// RoomInfo returns a read-only snapshot of a room.
func (s *RoomService) RoomInfo(code string) (domain.RoomInfo, error) {
	room, ok := s.rooms.Get(code)
	if !ok {
		return domain.RoomInfo{}, domain.ErrRoomNotFound
	}
	return room.Info(), nil
}

// Disconnect sweeps a dropped connection out of every room it belonged to.
func (s *RoomService) Disconnect(connID string) {
	s.rooms.ForEach(func(room *Room) {
		room.Disconnect(connID)
	})
}
