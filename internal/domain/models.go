package domain

// RoomState enumerates the lifecycle of a quiz room. Answering and Revealed
// split what older clients knew as a single "playing" phase.
type RoomState string

const (
	StateLobby     RoomState = "lobby"
	StateAnswering RoomState = "answering"
	StateRevealed  RoomState = "revealed"
	StateFinished  RoomState = "finished"
)

// Question models an MCQ question keyed by option index.
type Question struct {
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is the materialized quiz definition a room is created from.
type Quiz struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	TimePerQuestion int        `json:"timePerQuestion"` // seconds; defaults to 30 if zero
	Questions       []Question `json:"questions"`
}

// QuestionView is the answer-free form of a question published to a room
// while it is still open for answers.
type QuestionView struct {
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
	Index   int      `json:"index"`
	Total   int      `json:"total"`
}

// PlayerScore is a snapshot-friendly view of one player.
type PlayerScore struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// RoomCreated acknowledges a createRoom request.
type RoomCreated struct {
	RoomCode  string `json:"roomCode"`
	QuizTitle string `json:"quizTitle"`
}

// OwnerSnapshot is the full resume state handed to a rejoining owner.
// Questions include correct answers; it is never broadcast to players.
type OwnerSnapshot struct {
	Players              []PlayerScore `json:"players"`
	State                RoomState     `json:"state"`
	CurrentQuestionIndex int           `json:"currentQuestionIndex"`
	Questions            []Question    `json:"questions"`
}

// RoomInfo is the read-only snapshot any connection may request.
type RoomInfo struct {
	State                RoomState     `json:"state"`
	Players              []PlayerScore `json:"players"`
	CurrentQuestionIndex int           `json:"currentQuestionIndex"`
	TotalQuestions       int           `json:"totalQuestions"`
}
