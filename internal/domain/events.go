package domain

// Outbound event names. Request acks are named by the transport; these are
// the room-driven broadcasts and the owner unicast.
const (
	EventPlayersUpdate     = "playersUpdate"
	EventQuizStarted       = "quizStarted"
	EventNewQuestion       = "newQuestion"
	EventTimerTick         = "timerTick"
	EventTimerEnd          = "timerEnd"
	EventQuizEnded         = "quizEnded"
	EventAnswerReceived    = "answerReceived"
	EventOwnerDisconnected = "ownerDisconnected"
)

// QuestionPayload wraps the published question for quizStarted/newQuestion.
type QuestionPayload struct {
	Question QuestionView `json:"question"`
}

// TimerTickPayload carries the countdown value after each tick.
type TimerTickPayload struct {
	Seconds int `json:"seconds"`
}

// RevealPayload discloses the correct answer and scoreboard on timerEnd.
type RevealPayload struct {
	CorrectAnswer int           `json:"correctAnswer"`
	Explanation   string        `json:"explanation,omitempty"`
	Scores        []PlayerScore `json:"scores"`
}

// QuizEndedPayload carries the final scoreboard.
type QuizEndedPayload struct {
	Scores []PlayerScore `json:"scores"`
}

// AnswerReceivedPayload tells the owner how many players have answered.
type AnswerReceivedPayload struct {
	PlayerID      string `json:"playerId"`
	AnsweredCount int    `json:"answeredCount"`
	TotalPlayers  int    `json:"totalPlayers"`
}
