package pipeline

import "fmt"

// documentPromptTemplate instructs the backend to emit the full learning
// bundle as bare JSON. The schema block and the numbered rules restate the
// same shape; models drift less when the structure is spelled out twice.
const documentPromptTemplate = `Return ONLY valid JSON. No markdown, no notes, no explanations.

Generate comprehensive learning content for the topic: %q

Your output MUST follow the EXACT structure:

{
  "teaching_content": {
    "title": "string",
    "introduction": "string",
    "sections": [
      {
        "heading": "string",
        "content": "string"
      }
    ],
    "summary": "string"
  },
  "flashcards": [
    {
      "title": "string",
      "explanation": "string",
      "key_point": "string"
    }
  ],
  "quiz": [
    {
      "question": "string",
      "options": ["A", "B", "C", "D"],
      "answer": "string"
    }
  ],
  "test": {
    "mcq_questions": [
      {
        "question": "string",
        "options": ["A", "B", "C", "D"],
        "answer": "string",
        "explanation": "string"
      }
    ],
    "qa_questions": [
      {
        "question": "string",
        "answer": "string"
      }
    ]
  }
}

STRICT RULES:
1. teaching_content: a complete lesson with introduction, 3-5 sections, and summary
2. Exactly 5 flashcards
3. Exactly 5 quiz questions
4. test: exactly 5 MCQ questions and exactly 3 Q&A questions
5. Every quiz and MCQ question has exactly 4 options, all distinct
6. Every answer matches exactly one of its options, character for character
7. No text outside the JSON
`

// suggestionsPromptTemplate asks for follow-up topics as a bare JSON array.
// This prompt is independent of the document prompt; the two must never be
// merged into one backend call.
const suggestionsPromptTemplate = `Return ONLY a valid JSON array. No markdown, no notes, no explanations.

The learner just finished studying the topic: %q

Suggest 3-4 related next topics to study.

Your output MUST follow the EXACT structure:

[
  {
    "topic": "string",
    "description": "string"
  }
]

STRICT RULES:
1. Between 3 and 4 suggestions
2. Each description is at most 15 words
3. No text outside the JSON array
`

// BuildDocumentPrompt renders the primary document prompt for a topic.
// The topic is assumed trimmed and non-empty by the caller.
func BuildDocumentPrompt(topic string) string {
	return fmt.Sprintf(documentPromptTemplate, topic)
}

// BuildSuggestionsPrompt renders the enrichment prompt for a topic.
func BuildSuggestionsPrompt(topic string) string {
	return fmt.Sprintf(suggestionsPromptTemplate, topic)
}
