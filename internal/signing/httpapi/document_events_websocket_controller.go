package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/infra/httpserver"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/httpapi/internal"
	"signflow-server/internal/signing/usecases"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin for development
		// In production, you should validate the origin
		return true
	},
}

// DocumentEventMessage is the wire shape pushed to websocket clients whenever
// a field changes or a finalize run settles.
type DocumentEventMessage struct {
	Type       string    `json:"type"`
	DocumentID string    `json:"document_id"`
	Timestamp  time.Time `json:"timestamp"`
	Data       any       `json:"data"`
}

type clientRegistration struct {
	conn       *websocket.Conn
	documentID string
}

type DocumentEventsWebSocketController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]string
	clientsMux sync.RWMutex
	broadcast  chan DocumentEventMessage
	register   chan clientRegistration
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewDocumentEventsWebSocketController(broker async.InternalBroker) *DocumentEventsWebSocketController {
	ctx, cancel := context.WithCancel(context.Background())

	wsc := &DocumentEventsWebSocketController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]string),
		broadcast:  make(chan DocumentEventMessage, 256),
		register:   make(chan clientRegistration),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	// Start the hub
	go wsc.run()

	return wsc
}

var _ httpserver.Controller = (*DocumentEventsWebSocketController)(nil)

func (wsc *DocumentEventsWebSocketController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/documents/{id}/events", wsc.handleWebSocket())
}

func (wsc *DocumentEventsWebSocketController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID := r.PathValue("id")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("new websocket connection established",
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("document_id", documentID))

		wsc.register <- clientRegistration{conn: conn, documentID: documentID}

		go wsc.handlePingPong(conn)
		go wsc.handleClient(conn)
	}
}

func (wsc *DocumentEventsWebSocketController) handleClient(conn *websocket.Conn) {
	defer func() {
		wsc.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (wsc *DocumentEventsWebSocketController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-wsc.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (wsc *DocumentEventsWebSocketController) run() {
	subscription, err := wsc.broker.Subscribe(usecases.TopicDocumentEvents)
	if err != nil {
		slog.Error("failed to subscribe to document events", slog.String("error", err.Error()))
		return
	}
	defer wsc.broker.Unsubscribe(usecases.TopicDocumentEvents, subscription)

	for {
		select {
		case <-wsc.ctx.Done():
			return

		case registration := <-wsc.register:
			wsc.clientsMux.Lock()
			wsc.clients[registration.conn] = registration.documentID
			wsc.clientsMux.Unlock()
			slog.Info("websocket client registered", slog.Int("total_clients", len(wsc.clients)))

		case client := <-wsc.unregister:
			wsc.clientsMux.Lock()
			if _, ok := wsc.clients[client]; ok {
				delete(wsc.clients, client)
				close := func() {
					defer func() {
						if r := recover(); r != nil {
							slog.Warn("recovered from panic while closing websocket", slog.Any("panic", r))
						}
					}()
					client.Close()
				}
				close()
			}
			wsc.clientsMux.Unlock()
			slog.Info("websocket client unregistered", slog.Int("total_clients", len(wsc.clients)))

		case message := <-wsc.broadcast:
			wsc.clientsMux.RLock()
			for client, documentID := range wsc.clients {
				if documentID != message.DocumentID {
					continue
				}
				select {
				case <-wsc.ctx.Done():
					wsc.clientsMux.RUnlock()
					return
				default:
					client.SetWriteDeadline(time.Now().Add(10 * time.Second))
					if err := client.WriteJSON(message); err != nil {
						slog.Error("failed to write message to websocket client", slog.String("error", err.Error()))
						client.Close()
						delete(wsc.clients, client)
					}
				}
			}
			wsc.clientsMux.RUnlock()

		case brokerMsg := <-subscription.Receiver:
			message, ok := toDocumentEventMessage(brokerMsg)
			if !ok {
				continue
			}

			// Non-blocking send to broadcast channel
			select {
			case wsc.broadcast <- message:
			default:
				slog.Warn("broadcast channel full, dropping message")
			}
		}
	}
}

func toDocumentEventMessage(msg async.BrokerMessage) (DocumentEventMessage, bool) {
	message := DocumentEventMessage{
		Type:      msg.Event,
		Timestamp: time.Now(),
	}

	switch value := msg.Value.(type) {
	case domain.FieldCreatedEvent:
		message.DocumentID = value.Field.DocumentID.String()
		message.Data = internal.ToFieldResponse(value.Field)
	case domain.FieldUpdatedEvent:
		message.DocumentID = value.Field.DocumentID.String()
		message.Data = internal.ToFieldResponse(value.Field)
	case domain.FieldCompletedEvent:
		message.DocumentID = value.Field.DocumentID.String()
		message.Data = internal.ToFieldResponse(value.Field)
	case domain.FieldDeletedEvent:
		message.DocumentID = value.DocumentID.String()
		message.Data = map[string]any{
			"field_id":    value.FieldID,
			"page_number": value.PageNumber,
		}
	case domain.DocumentFinalizedEvent:
		message.DocumentID = value.DocumentID.String()
		message.Data = map[string]any{
			"skipped_count": value.SkippedCount,
		}
	case domain.DocumentFinalizeFailedEvent:
		message.DocumentID = value.DocumentID.String()
		message.Data = map[string]any{
			"reason": value.Reason,
		}
	default:
		return DocumentEventMessage{}, false
	}

	return message, true
}

func (wsc *DocumentEventsWebSocketController) Shutdown() {
	slog.Info("shutting down document events websocket controller")
	wsc.cancel()

	wsc.clientsMux.Lock()
	for client := range wsc.clients {
		client.Close()
	}
	wsc.clientsMux.Unlock()

	close(wsc.broadcast)
	close(wsc.register)
	close(wsc.unregister)
}
