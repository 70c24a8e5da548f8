package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/lulu73211/ia-quizz-arena/internal/app"
)

// WSHandler upgrades connections and dispatches named events to the room
// engine. Request/response events are answered with a typed ack or an error
// payload; fire-and-forget events get no reply at all.
type WSHandler struct {
	service  *app.RoomService
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.RoomService, hub *Hub) *WSHandler {
	return &WSHandler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS runs the read loop for one connection until it drops.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	c := newClient(conn)
	h.hub.register(c)
	go c.writePump()
	log.Info().Str("conn", c.id).Msg("client connected")

	defer func() {
		h.service.Disconnect(c.id)
		h.hub.unregister(c)
		_ = conn.Close()
		log.Info().Str("conn", c.id).Msg("client disconnected")
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		h.dispatch(r, c, inbound)
	}
}

func (h *WSHandler) dispatch(r *http.Request, c *client, inbound inboundMessage) {
	switch inbound.Type {
	case "createRoom":
		var payload createRoomPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			c.enqueue(errMsg("invalid createRoom payload"))
			return
		}
		created, err := h.service.CreateRoom(r.Context(), payload.QuizID, payload.UserID, c.id)
		if err != nil {
			c.enqueue(errMsg(err.Error()))
			return
		}
		h.hub.joinRoom(created.RoomCode, c)
		c.enqueue(outbound{Type: ackRoomCreated, Payload: created})

	case "joinRoom":
		var payload joinRoomPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			c.enqueue(errMsg("invalid joinRoom payload"))
			return
		}
		// Join the broadcast group first so the roster update that the
		// engine emits reaches this player too.
		h.hub.joinRoom(payload.RoomCode, c)
		players, err := h.service.JoinRoom(payload.RoomCode, c.id, payload.PlayerName)
		if err != nil {
			h.hub.leaveRoom(payload.RoomCode, c)
			c.enqueue(errMsg(err.Error()))
			return
		}
		c.enqueue(outbound{Type: ackRoomJoined, Payload: joinedPayload{Players: players}})

	case "rejoinAsOwner":
		var payload rejoinAsOwnerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			c.enqueue(errMsg("invalid rejoinAsOwner payload"))
			return
		}
		h.hub.joinRoom(payload.RoomCode, c)
		snapshot, err := h.service.RejoinOwner(payload.RoomCode, c.id, payload.UserID)
		if err != nil {
			h.hub.leaveRoom(payload.RoomCode, c)
			c.enqueue(errMsg(err.Error()))
			return
		}
		c.enqueue(outbound{Type: ackOwnerRejoined, Payload: snapshot})

	case "startQuiz":
		var payload roomCodePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return
		}
		h.service.StartQuiz(payload.RoomCode, c.id)

	case "submitAnswer":
		var payload submitAnswerPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return
		}
		h.service.SubmitAnswer(payload.RoomCode, c.id, payload.AnswerIndex)

	case "nextQuestion":
		var payload roomCodePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return
		}
		h.service.NextQuestion(payload.RoomCode, c.id)

	case "getRoomInfo":
		var payload roomCodePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			c.enqueue(errMsg("invalid getRoomInfo payload"))
			return
		}
		info, err := h.service.RoomInfo(payload.RoomCode)
		if err != nil {
			c.enqueue(errMsg(err.Error()))
			return
		}
		c.enqueue(outbound{Type: ackRoomInfo, Payload: info})

	default:
		c.enqueue(errMsg("unsupported message type"))
	}
}

func errMsg(message string) outbound {
	return outbound{Type: "error", Payload: errorPayload{Message: message}}
}
