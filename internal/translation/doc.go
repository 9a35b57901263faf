// Package translation provides HTML document translation through large
// language model APIs. The Client interface is what the processor consumes;
// Google Gemini (via google.golang.org/genai) and OpenAI chat completions are
// the available backends, optionally guarded by a circuit breaker.
package translation
