// Package gemini implements the generation.ContentGenerator interface
// using Google's Gemini API: text-to-speech narration of topic content,
// mentoring tips for exam questions, and structured 7-day study plans.
package gemini
