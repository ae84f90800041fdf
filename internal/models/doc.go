// Package models lists the chat models the OpenAI and Gemini backends
// offer, so users can pick one for pronunciation explanations.
package models
