package handlers

import (
	"math/rand/v2"
	"net/http"
)

type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// DailyQuotes is the fixed pool the quote endpoint draws from. Despite the
// name, a fresh random pick happens on every request.
var DailyQuotes = []Quote{
	{Quote: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Quote: "Take a deep breath. You are exactly where you need to be.", Author: "Unknown"},
	{Quote: "Be the change you wish to see in the world.", Author: "Mahatma Gandhi"},
	{Quote: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Quote: "The purpose of our lives is to be happy.", Author: "Dalai Lama"},
	{Quote: "You are never too old to set another goal or to dream a new dream.", Author: "C.S. Lewis"},
	{Quote: "In the middle of difficulty lies opportunity.", Author: "Albert Einstein"},
	{Quote: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Quote: "Your mental health is a priority. Your happiness is essential.", Author: "Unknown"},
	{Quote: "You are enough just as you are.", Author: "Meghan Markle"},
}

type QuoteHandler struct{}

func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

func (h *QuoteHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DailyQuotes[rand.IntN(len(DailyQuotes))])
}
