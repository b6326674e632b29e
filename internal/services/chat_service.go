package services

import (
	"context"
	"errors"
	"log"

	"herbal/pkg/gemini"
)

const assistantPrompt = `You are a knowledgeable AYUSH (Ayurveda, Yoga & Naturopathy, Unani, Siddha) herbal medicine assistant.

Your expertise includes traditional Indian medicinal plants and their properties, Ayurvedic principles and doshas, preparation methods for herbal remedies, plant identification and usage, and safety considerations and contraindications.

Provide accurate information, include preparation methods when relevant, mention safety considerations, and acknowledge limitations when unsure. Keep responses concise but comprehensive.`

// Fixed replies used when no assistant answer is available.
const (
	ReplyUnavailable = "I'm your virtual herbalist assistant! I can help you learn about medicinal plants, their uses and AYUSH principles, but my knowledge service is not available right now. Please ask me about specific plants like Turmeric, Neem or Ashwagandha!"
	ReplyEmpty       = "I'm sorry, I couldn't process your request right now. Please try asking about specific medicinal plants or their uses."
)

// Assistant generates a reply to a user message. *gemini.Client satisfies it.
type Assistant interface {
	Generate(ctx context.Context, systemPrompt, message string) (string, error)
}

// ChatService answers free-text questions through an external assistant.
type ChatService struct {
	assistant Assistant
}

// NewChatService creates a ChatService. A nil assistant always yields the
// unavailable reply.
func NewChatService(assistant Assistant) *ChatService {
	return &ChatService{assistant: assistant}
}

// Reply returns the assistant's answer. Upstream failures degrade to a fixed
// reply instead of an error.
func (s *ChatService) Reply(ctx context.Context, message string) string {
	if s.assistant == nil {
		return ReplyUnavailable
	}
	reply, err := s.assistant.Generate(ctx, assistantPrompt, message)
	if errors.Is(err, gemini.ErrEmptyResponse) {
		return ReplyEmpty
	}
	if err != nil {
		log.Printf("Chat assistant error: %v", err)
		return ReplyUnavailable
	}
	if reply == "" {
		return ReplyEmpty
	}
	return reply
}
