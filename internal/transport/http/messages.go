package http

import (
	"encoding/json"

	"github.com/lulu73211/ia-quizz-arena/internal/domain"
)

// inboundMessage is the envelope for every client→server message.
type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Ack event names for request/response messages. Fire-and-forget messages
// (startQuiz, submitAnswer, nextQuestion) have no ack.
const (
	ackRoomCreated   = "roomCreated"
	ackRoomJoined    = "roomJoined"
	ackOwnerRejoined = "ownerRejoined"
	ackRoomInfo      = "roomInfo"
)

type createRoomPayload struct {
	QuizID string `json:"quizId"`
	UserID string `json:"userId"`
}

type joinRoomPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type rejoinAsOwnerPayload struct {
	RoomCode string `json:"roomCode"`
	UserID   string `json:"userId"`
}

type roomCodePayload struct {
	RoomCode string `json:"roomCode"`
}

type submitAnswerPayload struct {
	RoomCode    string `json:"roomCode"`
	AnswerIndex int    `json:"answerIndex"`
}

type joinedPayload struct {
	Players []domain.PlayerScore `json:"players"`
}

type errorPayload struct {
	Message string `json:"message"`
}
