package narrative

import (
	"encoding/json"
	"fmt"
)

// DefaultGuidance tells the model how to read the numbers.
const DefaultGuidance = "Each value counts problems: smaller values mean fewer problems, larger values mean more."

const systemPrompt = "You are a data analyst who writes objective, accurate evaluations of people from their data."

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildMessages assembles the chat messages for one entity.
func BuildMessages(entity string, summary map[string]map[string]float64, guidance string) ([]Message, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	if guidance == "" {
		guidance = DefaultGuidance
	}

	prompt := fmt.Sprintf(`Write a short professional evaluation of %s based on the data below.

Data:
%s

Cover:
1. Overall performance
2. Analysis of each indicator
3. Strengths
4. Suggestions for improvement

Requirements:
- Be objective, accurate and concise
- Use professional but plain language
- %s
- Keep it to about 150 words
`, entity, data, guidance)

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}, nil
}
