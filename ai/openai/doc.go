// Package openai implements ai.Summarizer against OpenAI-compatible chat
// APIs (Ollama, LocalAI, vLLM, or hosted OpenAI) through langchaingo.
//
// The package distinguishes two failure modes: transport errors reaching
// the endpoint surface as ai.ErrModelUnavailable (the caller aborts its
// run), while model-level failures are returned as-is and affect only the
// chunk being summarized.
package openai
