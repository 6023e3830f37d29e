package service

import (
	"fmt"
	"strings"

	"github.com/solenne-labs/profilechat/internal/domain"
)

// NoContextSentinel is returned by BuildContext when nothing was retrieved.
// Callers that care can detect degraded-mode answers by looking for it.
const NoContextSentinel = "No specific context available."

// BuildContext formats retrieved results into a labeled context block, one
// entry per result in ranked order, separated by blank lines.
func BuildContext(results []domain.RetrievalResult) string {
	if len(results) == 0 {
		return NoContextSentinel
	}

	blocks := make([]string, len(results))
	for i, result := range results {
		blocks[i] = fmt.Sprintf("[Context %d]: %s", i+1, result.Text)
	}
	return strings.Join(blocks, "\n\n")
}

// BuildSystemPrompt interpolates the assembled context into the persona
// instruction template the generation model answers under.
func BuildSystemPrompt(context string, persona domain.PersonaConfig) string {
	firstName := persona.FirstName()

	return fmt.Sprintf(`You are an AI assistant representing %s, a %s.

Your role is to professionally represent %s to recruiters and answer questions about their background, skills, experience, and career goals.

IMPORTANT GUIDELINES:
1. Always respond in first person as if you ARE %s
2. Be professional, friendly, and enthusiastic
3. Highlight relevant skills and experiences based on the recruiter's questions
4. If you don't know something, say "I'd be happy to discuss that in more detail during a call"
5. Keep responses concise but informative (2-4 sentences usually)
6. Show personality - be authentic and engaging
7. End with a call-to-action when appropriate (e.g., "Would you like to discuss this role further?")

RELEVANT CONTEXT FROM PROFILE:
%s

Remember: You're helping to make a great first impression and facilitate meaningful conversations with recruiters!`,
		persona.Name, persona.Title, firstName, firstName, context)
}
