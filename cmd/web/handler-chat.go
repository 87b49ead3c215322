package main

import (
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/myrjola/smartcop/internal/chatbot"
	"net/http"
)

// chatHistoryLimit bounds the conversation kept in the browser session.
const chatHistoryLimit = 40

type chatResponse struct {
	chatbot.Reply
	History []ai.Message `json:"history"`
}

// chat answers a question of the legal assistant. The conversation is kept in the browser session.
func (app *application) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		app.errorResponse(w, r, err)
		return
	}
	ctx := r.Context()
	history, ok := app.sessionManager.Get(ctx, string(chatHistorySessionKey)).([]ai.Message)
	if !ok {
		history = []ai.Message{{Role: ai.RoleAssistant, Content: chatbot.Greeting}}
	}

	reply, err := app.chatbot.Answer(ctx, history, req.Message)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	history = append(history,
		ai.Message{Role: ai.RoleUser, Content: req.Message},
		ai.Message{Role: ai.RoleAssistant, Content: reply.Text},
	)
	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}
	app.sessionManager.Put(ctx, string(chatHistorySessionKey), history)
	app.writeJSON(w, r, http.StatusOK, chatResponse{Reply: reply, History: history})
}
