// Package models lists the OpenAI chat models available to the configured
// API key, so users can pick one for IPA lookups with --openai-model.
package models
