package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/engine"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/hashpow"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsReadLimit    = 64 * 1024 // network-data text is small
)

// subscriber is one connected stream client. Each holds its own
// session: the engine recomputes against it whenever prices move.
type subscriber struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu   sync.Mutex
	sess *domain.Session
}

func (sub *subscriber) send(v any) error {
	sub.writeMu.Lock()
	defer sub.writeMu.Unlock()
	sub.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return sub.conn.WriteJSON(v)
}

// streamHub tracks stream subscribers for price-refresh fan-out.
type streamHub struct {
	mu   sync.RWMutex
	subs map[*subscriber]struct{}
}

func newStreamHub() *streamHub {
	return &streamHub{subs: make(map[*subscriber]struct{})}
}

func (h *streamHub) add(sub *subscriber) {
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
}

func (h *streamHub) remove(sub *subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

func (h *streamHub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *streamHub) snapshot() []*subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*subscriber, 0, len(h.subs))
	for sub := range h.subs {
		out = append(out, sub)
	}
	return out
}

// NotifyPrices recomputes every subscriber's last input against the
// fresh snapshot and pushes the new report. Wired as the price
// client's onUpdate callback.
func (s *Server) NotifyPrices(snap domain.PriceSnapshot) {
	for _, sub := range s.hub.snapshot() {
		sub.mu.Lock()
		report, ok := s.engine.Recompute(sub.sess, snap)
		sub.mu.Unlock()
		if !ok {
			continue // client has not sent a computable input yet
		}
		if err := sub.send(report); err != nil {
			slog.Debug("Stream push failed", slog.Any("error", err))
		}
	}
}

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	// Origin enforcement happens in the CORS layer for the REST
	// routes; the stream accepts the same browser clients.
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) handleStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("Stream upgrade failed", slog.Any("error", err))
			return
		}

		sub := &subscriber{conn: conn, sess: domain.NewSession()}
		s.hub.add(sub)
		slog.Info("Stream subscriber connected", slog.String("remote", r.RemoteAddr))

		defer func() {
			s.hub.remove(sub)
			conn.Close()
			slog.Info("Stream subscriber disconnected", slog.String("remote", r.RemoteAddr))
		}()

		conn.SetReadLimit(wsReadLimit)
		for {
			var req estimateRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Debug("Stream read error", slog.Any("error", err))
				}
				return
			}

			in, err := req.toInput()
			if err != nil {
				in = engine.Input{NetworkData: req.NetworkData, Mode: domain.ParseDisplayMode(req.Mode)}
			}

			sub.mu.Lock()
			report := s.engine.Compute(sub.sess, in, s.prices.Snapshot())
			sub.mu.Unlock()

			if err := sub.send(report); err != nil {
				return
			}
		}
	}
}

// hashUnit converts the request's unit string.
func hashUnit(s string) hashpow.Unit {
	if s == "" {
		return hashpow.GH
	}
	return hashpow.ParseUnit(s)
}
