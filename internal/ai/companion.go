// Package ai provides the chat companion's reply generation. The current
// implementation picks a canned supportive reply; a real model integration
// only needs to satisfy ResponseGenerator.
package ai

import (
	"context"
	"math/rand/v2"
)

// ResponseGenerator produces the companion's reply to a user message.
type ResponseGenerator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// CannedReplies is the fixed set of supportive responses the companion
// chooses from.
var CannedReplies = []string{
	"I understand how you're feeling. Would you like to talk more about that?",
	"Thank you for sharing that with me. How does that make you feel?",
	"I'm here to listen. Is there anything specific that's bothering you?",
	"That's interesting. Tell me more about why you feel that way.",
	"I appreciate you opening up to me. What do you think would help in this situation?",
	"It sounds like you're going through a lot. Remember to take care of yourself.",
	"Have you tried taking some deep breaths when you feel this way?",
	"Sometimes writing down our thoughts can help us process them better.",
	"It's important to acknowledge your feelings. You're doing great by expressing them.",
	"Remember that it's okay to have bad days. Tomorrow is a new opportunity.",
}

// CannedCompanion picks uniformly at random from CannedReplies. The incoming
// message is ignored.
type CannedCompanion struct{}

func NewCannedCompanion() *CannedCompanion {
	return &CannedCompanion{}
}

func (c *CannedCompanion) Generate(_ context.Context, _ string) (string, error) {
	return CannedReplies[rand.IntN(len(CannedReplies))], nil
}
