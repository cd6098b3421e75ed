package openai

// sentimentPrompt instructs the model to answer in the exact line format the
// parser understands. The analyzed text is embedded verbatim.
const sentimentPrompt = `You are a sentiment detection engine.
Analyze the following text and respond in this exact format:

Sentiment: Positive / Negative / Neutral
Tone: Friendly / Upset / Angry / Polite / Neutral
Explanation: Short plain explanation

Text: "%s"`

// summaryPrompt produces a short call summary following a fixed template.
const summaryPrompt = `You are a call summary assistant for a sales team.
Summarize the following call transcript and respond in this exact format:

Customer Name: name if mentioned, otherwise "Unknown"
Call Date: date if mentioned, otherwise "Not mentioned"
Sentiment: Positive / Negative / Neutral
Key Topics: comma-separated list of the main topics discussed
Summary: two or three plain sentences covering the call

Transcript: "%s"`

// neutralClassification is returned for empty input without calling the
// inference service. It parses to the canned neutral payload.
const neutralClassification = "Sentiment: Neutral\nTone: Neutral\nExplanation: No text provided."

// noTranscriptSummary is returned for an empty transcript without calling the
// inference service.
const noTranscriptSummary = "No transcript provided, nothing to summarize."
