package ws

import (
	"log"
	"net/http"
	"strings"

	"med-ready/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub    *Hub
	jwt    jwt.Service
	logger *log.Logger
}

func NewHandler(hub *Hub, jwtSvc jwt.Service, logger *log.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwtSvc, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleAnalysisWS upgrades an authenticated connection and subscribes it
// to the caller's analysis events. Browsers cannot set headers on a
// websocket handshake, so the access token is also accepted as a query
// parameter.
func (h *Handler) HandleAnalysisWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}

	userID, ok := h.authenticate(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			if h.logger != nil {
				h.logger.Printf("WS upgrade error | error=%v", err)
			}
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}

func (h *Handler) authenticate(c fiber.Ctx) (uuid.UUID, bool) {
	token := tokenFromRequest(c)
	if token == "" || h.jwt == nil {
		return uuid.Nil, false
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		return uuid.Nil, false
	}
	if claims.TokenType != jwt.TokenTypeAccess || h.jwt.IsRefreshToken(claims) {
		return uuid.Nil, false
	}

	return claims.UserID, true
}

func tokenFromRequest(c fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(c.Query("token"))
}
