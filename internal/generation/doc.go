// Package generation provides interfaces and types for interacting with
// external generative-AI services. It abstracts the details of LLM API
// integration (Gemini), allowing the application to synthesize topic
// narration, mentoring tips, and study plans without coupling to a
// specific external service.
package generation
