// Package chatbot answers officers' legal and procedural questions.
package chatbot

import (
	"context"
	"fmt"
	"github.com/myrjola/smartcop/internal/ai"
	"github.com/myrjola/smartcop/internal/errors"
	"log/slog"
	"strings"
)

const systemPrompt = "You are a helpful AI assistant for law enforcement officers. You can answer questions about legal " +
	"procedures, laws, regulations, general knowledge, and provide guidance on police work. Be professional, " +
	"accurate, and helpful."

// Greeting opens every conversation.
const Greeting = "Hello Officer! I'm your AI legal assistant. I can answer any questions you have about legal " +
	"procedures, laws, regulations, or any other topic. How can I assist you today?"

// maxHistory bounds the number of earlier messages sent to the language model.
const maxHistory = 20

var ErrEmptyMessage = errors.NewSentinel("empty message")

// Reply is an answer to an officer's message.
type Reply struct {
	Text string `json:"text"`
	// Offline is set when the answer comes from the built-in responses instead of the language model.
	Offline bool `json:"offline"`
}

type Bot struct {
	chatter ai.Chatter
	logger  *slog.Logger
}

// New creates a bot answering with chatter. Use [ai.Disabled] to answer offline only.
func New(chatter ai.Chatter, logger *slog.Logger) *Bot {
	return &Bot{
		chatter: chatter,
		logger:  logger.With("source", "Chatbot"),
	}
}

// Answer replies to message given the earlier conversation. Language model failures fall back to offline answers,
// so the only error is an empty message.
func (b *Bot) Answer(ctx context.Context, history []ai.Message, message string) (Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{}, ErrEmptyMessage //nolint:exhaustruct // zero on error
	}
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	conversation := make([]ai.Message, 0, len(history)+1)
	conversation = append(conversation, history...)
	conversation = append(conversation, ai.Message{Role: ai.RoleUser, Content: message})

	text, err := b.chatter.Chat(ctx, systemPrompt, conversation)
	if err == nil {
		return Reply{Text: text, Offline: false}, nil
	}
	level := slog.LevelWarn
	if errors.Is(err, ai.ErrNotConfigured) {
		level = slog.LevelDebug
	}
	b.logger.LogAttrs(ctx, level, "answering offline", errors.SlogError(err))
	return Reply{Text: Offline(message), Offline: true}, nil
}

type topic struct {
	// keywords match when all of them occur in the message, or any of them when any is set.
	keywords []string
	any      bool
	answer   string
}

var topics = []topic{
	{
		keywords: []string{"miranda", "rights"},
		any:      true,
		answer: "Miranda Rights: You have the right to remain silent. Anything you say can and will be used " +
			"against you in a court of law. You have the right to an attorney. If you cannot afford an attorney, " +
			"one will be provided for you.",
	},
	{
		keywords: []string{"search", "seizure"},
		any:      false,
		answer: "Search and Seizure: The Fourth Amendment protects against unreasonable searches and seizures. " +
			"Generally, a warrant is required unless there are exigent circumstances, consent, or other " +
			"established exceptions.",
	},
	{
		keywords: []string{"arrest", "procedure"},
		any:      true,
		answer: "Arrest Procedures: 1) Establish probable cause, 2) Identify yourself as law enforcement, " +
			"3) Inform the person they are under arrest, 4) Read Miranda rights if interrogation will follow, " +
			"5) Use only necessary force, 6) Document everything properly.",
	},
	{
		keywords: []string{"evidence", "collection"},
		any:      true,
		answer: "Evidence Collection: 1) Secure the scene, 2) Document everything with photos/video, 3) Use " +
			"proper chain of custody procedures, 4) Wear protective equipment, 5) Label and seal evidence " +
			"properly, 6) Maintain detailed logs.",
	},
	{
		keywords: []string{"traffic", "violation"},
		any:      true,
		answer: "Traffic Violations: Common violations include speeding, running red lights, improper lane " +
			"changes, and DUI. Always ensure officer safety, be professional, explain the violation clearly, " +
			"and follow proper citation procedures.",
	},
	{
		keywords: []string{"witness", "interview"},
		any:      true,
		answer: "Witness Interviews: 1) Create a comfortable environment, 2) Ask open-ended questions first, " +
			"3) Listen actively, 4) Avoid leading questions, 5) Document statements accurately, 6) Get contact " +
			"information for follow-up.",
	},
}

func (t topic) matches(message string) bool {
	for _, k := range t.keywords {
		found := strings.Contains(message, k)
		if found && t.any {
			return true
		}
		if !found && !t.any {
			return false
		}
	}
	return !t.any
}

// Offline answers from built-in responses. Topics are checked in order and the first match wins.
func Offline(message string) string {
	lower := strings.ToLower(message)
	for _, t := range topics {
		if t.matches(lower) {
			return t.answer
		}
	}
	return fmt.Sprintf("I understand you're asking about: %q. While I'm currently operating in offline mode, I "+
		"recommend consulting your department's policy manual, legal resources, or speaking with a supervisor for "+
		"specific guidance on this matter.", message)
}
