package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/publicthrone547/inavora-chatbot/internal/chat"
)

// ErrorKindHeader names the error category on every failed /chat response.
const ErrorKindHeader = "X-Error-Kind"

type ChatRequest struct {
	Message    string `json:"message" binding:"required"`
	RetryCount int    `json:"retry_count"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{chat: svc}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	// a missing key wins over anything wrong with the body
	if !h.chat.Configured() {
		writeChatError(c, chat.ErrMissingAPIKey)
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
			writeChatError(c, chat.ErrEmptyMessage)
			return
		}
		log.WithError(err).Debug("Rejecting undecodable chat body")
		c.Header(ErrorKindHeader, string(chat.KindValidation))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reply, err := h.chat.Reply(c.Request.Context(), chat.Request{
		Message:    req.Message,
		RetryCount: req.RetryCount,
	})
	if err != nil {
		writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: reply})
}

func writeChatError(c *gin.Context, err error) {
	var ce *chat.Error
	if !errors.As(err, &ce) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header(ErrorKindHeader, string(ce.Kind))
	switch ce.Kind {
	case chat.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": ce.Message})
	case chat.KindUpstream:
		c.JSON(http.StatusInternalServerError, gin.H{"error": ce.Message, "can_retry": ce.CanRetry})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": ce.Message})
	}
}
