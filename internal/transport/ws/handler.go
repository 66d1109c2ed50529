package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Timurc390/Boardly/internal/config"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/realtime"
)

const closeGracePeriod = time.Second

type connector interface {
	Connect(ctx context.Context, token string, boardID uuid.UUID) (*realtime.Session, error)
}

// Handler upgrades board broadcast connections and pumps frames between the
// socket and the realtime session.
type Handler struct {
	svc      connector
	cfg      config.RealtimeConfig
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a websocket Handler.
func NewHandler(svc connector, cfg config.RealtimeConfig, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, cfg: cfg, log: logger.With("handler", "ws")}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     originChecker(cfg.AllowedOrigins),
	}
	return h
}

// Register mounts the board channel route. The trailing slash is part of
// the public URL.
func (h *Handler) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	var handler http.Handler = http.HandlerFunc(h.Serve)
	if wrap != nil {
		handler = wrap(handler)
	}
	mux.Handle("GET /ws/boards/{id}/{$}", handler)
}

// Serve handles GET /ws/boards/{id}/?token=. Access failures are answered
// with a bare 403 before the upgrade.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	boardID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	sess, err := h.svc.Connect(r.Context(), r.URL.Query().Get("token"), boardID)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) && !errors.Is(err, domain.ErrForbidden) {
			h.log.ErrorContext(r.Context(), "realtime connect failed",
				slog.String("board_id", boardID.String()),
				slog.String("error", err.Error()),
			)
		}
		w.WriteHeader(http.StatusForbidden)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		sess.Close()
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	ctx := r.Context()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writePump(conn, sess)
	}()

	h.readPump(ctx, conn, sess)

	sess.Close()
	<-done
	conn.Close()
}

// readPump feeds client frames to the session until the socket fails or the
// peer stops answering pings.
func (h *Handler) readPump(ctx context.Context, conn *websocket.Conn, sess *realtime.Session) {
	if h.cfg.MaxMessageBytes > 0 {
		conn.SetReadLimit(h.cfg.MaxMessageBytes)
	}
	h.extendReadDeadline(conn)
	conn.SetPongHandler(func(string) error {
		h.extendReadDeadline(conn)
		return nil
	})

	for {
		kind, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.DebugContext(ctx, "websocket read ended",
					slog.String("board_id", sess.BoardID().String()),
					slog.String("error", err.Error()),
				)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		sess.Handle(ctx, raw)
	}
}

func (h *Handler) extendReadDeadline(conn *websocket.Conn) {
	if h.cfg.PongTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout)) //nolint:errcheck
	}
}

// writePump forwards session messages to the socket and keeps the
// connection alive with pings. It returns when the session's outbound
// channel closes or a write fails; a failed write also unblocks readPump by
// closing the socket.
func (h *Handler) writePump(conn *websocket.Conn, sess *realtime.Session) {
	var tick <-chan time.Time
	if interval := h.cfg.PingInterval(); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case msg, ok := <-sess.Outbound():
			if !ok {
				code, reason := websocket.CloseNormalClosure, ""
				if sess.Evicted() {
					code, reason = websocket.ClosePolicyViolation, "too slow"
				}
				deadline := time.Now().Add(closeGracePeriod)
				conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline) //nolint:errcheck
				conn.Close()
				return
			}
			h.setWriteDeadline(conn)
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				sess.Close()
				conn.Close()
				return
			}
		case <-tick:
			h.setWriteDeadline(conn)
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sess.Close()
				conn.Close()
				return
			}
		}
	}
}

func (h *Handler) setWriteDeadline(conn *websocket.Conn) {
	if h.cfg.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)) //nolint:errcheck
	}
}

// originChecker allows every origin for "*", otherwise only the listed
// ones. Requests without an Origin header are not from browsers and pass.
func originChecker(allowed string) func(*http.Request) bool {
	allowAll := false
	origins := make(map[string]struct{})
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			allowAll = true
		default:
			origins[strings.ToLower(o)] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		if allowAll {
			return true
		}
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := origins[strings.ToLower(origin)]
		return ok
	}
}
