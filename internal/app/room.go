package app

import (
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lulu73211/ia-quizz-arena/internal/domain"
)

// Broadcaster delivers outbound events to every connection joined to a room,
// or to a single connection. Implementations must not call back into room
// operations; they are invoked with the room lock held.
type Broadcaster interface {
	ToRoom(roomCode, event string, payload any)
	ToConn(connID, event string, payload any)
}

type player struct {
	connID  string
	name    string
	score   int
	answers map[int]int // question index -> submitted option, write-once
}

// Room is the state machine for one live quiz session. Every operation,
// countdown ticks included, serializes on mu.
type Room struct {
	code            string
	quizID          string
	quizTitle       string
	ownerID         string
	questions       []domain.Question
	timePerQuestion int

	bc    Broadcaster
	clock clockwork.Clock

	mu               sync.Mutex
	ownerConnID      string
	players          map[string]*player
	order            []string // join order; stable tie-break for scoreboards
	state            domain.RoomState
	current          int
	secondsRemaining int
	timer            *countdown
}

func newRoom(code string, quiz domain.Quiz, ownerID, ownerConnID string, bc Broadcaster, clock clockwork.Clock) *Room {
	tpq := quiz.TimePerQuestion
	if tpq <= 0 {
		tpq = defaultTimePerQuestion
	}
	return &Room{
		code:            code,
		quizID:          quiz.ID,
		quizTitle:       quiz.Title,
		ownerID:         ownerID,
		ownerConnID:     ownerConnID,
		questions:       quiz.Questions,
		timePerQuestion: tpq,
		bc:              bc,
		clock:           clock,
		players:         make(map[string]*player),
		state:           domain.StateLobby,
	}
}

// Code returns the immutable room code.
func (r *Room) Code() string { return r.code }

// Join adds a player while the room is still in the lobby and broadcasts the
// updated roster.
func (r *Room) Join(connID, name string) ([]domain.PlayerScore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.StateLobby {
		return nil, domain.ErrQuizStarted
	}
	if _, ok := r.players[connID]; !ok {
		r.order = append(r.order, connID)
	}
	r.players[connID] = &player{connID: connID, name: name, answers: make(map[int]int)}

	roster := r.rosterLocked()
	r.bc.ToRoom(r.code, domain.EventPlayersUpdate, roster)
	log.Info().Str("room", r.code).Str("player", name).Msg("player joined")
	return roster, nil
}

// RejoinOwner re-attaches the owner's connection after a drop. The caller's
// durable identity must match; the returned snapshot lets the owner resume
// without event replay.
func (r *Room) RejoinOwner(connID, userID string) (domain.OwnerSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if userID != r.ownerID {
		return domain.OwnerSnapshot{}, domain.ErrNotOwner
	}
	r.ownerConnID = connID
	log.Info().Str("room", r.code).Msg("owner rejoined")
	return domain.OwnerSnapshot{
		Players:              r.rosterLocked(),
		State:                r.state,
		CurrentQuestionIndex: r.current,
		Questions:            r.questions,
	}, nil
}

// Start opens the first question. Only the current owner connection may start,
// and only from the lobby; anything else is silently ignored.
func (r *Room) Start(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if connID != r.ownerConnID || r.state != domain.StateLobby || len(r.questions) == 0 {
		log.Debug().Str("room", r.code).Str("state", string(r.state)).Msg("start ignored")
		return
	}
	r.current = 0
	r.publishQuestionLocked(domain.EventQuizStarted)
	log.Info().Str("room", r.code).Int("players", len(r.players)).Msg("quiz started")
}

// SubmitAnswer records a player's answer for the current question. Answers
// are write-once per question and only accepted while the countdown runs.
// The owner is notified of answer progress; once every player has answered
// the reveal fires early.
func (r *Room) SubmitAnswer(connID string, answerIndex int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != domain.StateAnswering {
		return
	}
	p, ok := r.players[connID]
	if !ok {
		return
	}
	if _, answered := p.answers[r.current]; answered {
		return
	}
	p.answers[r.current] = answerIndex

	q := r.questions[r.current]
	if answerIndex == q.CorrectAnswer {
		p.score += scoreAnswer(r.timePerQuestion, r.secondsRemaining)
	}

	answered := r.answeredCountLocked()
	if r.ownerConnID != "" {
		r.bc.ToConn(r.ownerConnID, domain.EventAnswerReceived, domain.AnswerReceivedPayload{
			PlayerID:      connID,
			AnsweredCount: answered,
			TotalPlayers:  len(r.players),
		})
	}

	if answered >= len(r.players) && len(r.players) > 0 {
		r.cancelCountdownLocked()
		r.revealLocked()
	}
}

// Next advances to the next question, or finishes the quiz past the last one.
// Owner only; cancels any running countdown first.
func (r *Room) Next(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if connID != r.ownerConnID {
		return
	}
	r.cancelCountdownLocked()
	r.current++

	if r.current >= len(r.questions) {
		r.state = domain.StateFinished
		r.bc.ToRoom(r.code, domain.EventQuizEnded, domain.QuizEndedPayload{Scores: r.sortedScoresLocked()})
		log.Info().Str("room", r.code).Msg("quiz finished")
		return
	}
	r.publishQuestionLocked(domain.EventNewQuestion)
}

// Disconnect handles a dropped connection. A disconnecting player is removed
// permanently; a disconnecting owner only loses their connection binding and
// may rejoin later.
func (r *Room) Disconnect(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[connID]; ok {
		delete(r.players, connID)
		for i, id := range r.order {
			if id == connID {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		r.bc.ToRoom(r.code, domain.EventPlayersUpdate, r.rosterLocked())
	}
	if r.ownerConnID == connID {
		r.ownerConnID = ""
		r.bc.ToRoom(r.code, domain.EventOwnerDisconnected, struct{}{})
		log.Info().Str("room", r.code).Msg("owner disconnected")
	}
}

// Info returns a read-only snapshot callable by any connection.
func (r *Room) Info() domain.RoomInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.RoomInfo{
		State:                r.state,
		Players:              r.rosterLocked(),
		CurrentQuestionIndex: r.current,
		TotalQuestions:       len(r.questions),
	}
}

// publishQuestionLocked broadcasts the current question without its answer
// and arms the countdown.
func (r *Room) publishQuestionLocked(event string) {
	r.state = domain.StateAnswering
	q := r.questions[r.current]
	r.bc.ToRoom(r.code, event, domain.QuestionPayload{Question: domain.QuestionView{
		Prompt:  q.Prompt,
		Options: q.Options,
		Index:   r.current,
		Total:   len(r.questions),
	}})
	r.startCountdownLocked()
}

// revealLocked discloses the current question and scoreboard. Callers must
// have cleared the countdown first so the reveal fires at most once per
// question.
func (r *Room) revealLocked() {
	r.state = domain.StateRevealed
	q := r.questions[r.current]
	r.bc.ToRoom(r.code, domain.EventTimerEnd, domain.RevealPayload{
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Scores:        r.sortedScoresLocked(),
	})
}

func (r *Room) answeredCountLocked() int {
	n := 0
	for _, p := range r.players {
		if _, ok := p.answers[r.current]; ok {
			n++
		}
	}
	return n
}

// rosterLocked lists players in join order.
func (r *Room) rosterLocked() []domain.PlayerScore {
	roster := make([]domain.PlayerScore, 0, len(r.players))
	for _, id := range r.order {
		if p, ok := r.players[id]; ok {
			roster = append(roster, domain.PlayerScore{ID: p.connID, Name: p.name, Score: p.score})
		}
	}
	return roster
}

// sortedScoresLocked orders the roster by descending score; ties keep join
// order.
func (r *Room) sortedScoresLocked() []domain.PlayerScore {
	scores := r.rosterLocked()
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}
