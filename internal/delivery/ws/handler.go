package ws

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/delivery"
	"github.com/Vovarama1992/voxboard/internal/models"
	"github.com/Vovarama1992/voxboard/internal/ports"
	"github.com/gorilla/websocket"
)

// WSHandler serves GET /ws. Every binary frame is one recording; the reply is
// the same JSON the HTTP endpoint returns, plus "status".
func WSHandler(hub *Hub, svc ports.CommandProcessor, maxMessage int64, log *logger.ZapLogger) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Log(logger.LogEntry{Level: "warn", Message: "[WS] upgrade failed", Error: err})
			return
		}

		hub.Register(conn)
		defer hub.Unregister(conn)

		conn.SetReadLimit(maxMessage)

		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Log(logger.LogEntry{Level: "warn", Message: "[WS] read failed", Error: err})
				}
				return
			}

			var out models.Outcome
			if mt != websocket.BinaryMessage || len(msg) == 0 {
				out = models.Outcome{Kind: models.OutcomeNoAudio}
			} else {
				out = svc.Process(r.Context(), bytes.NewReader(msg))
			}

			status, body := delivery.OutcomeResponse(out)
			body["status"] = status

			payload, err := json.Marshal(body)
			if err != nil {
				log.Log(logger.LogEntry{Level: "error", Message: "[WS] json marshal failed", Error: err})
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Log(logger.LogEntry{Level: "warn", Message: "[WS] write failed", Error: err})
				return
			}
		}
	}
}
