// Package explain asks a language model to explain the pronunciation of
// a Russian word to a learner, given the transcription computed by
// package phonetic. OpenAI and Gemini are supported; calls go through a
// circuit breaker so that a failing backend is not retried for every
// word of a batch.
package explain
