// Package phonetic looks up IPA transcriptions of English words, either
// from an OpenAI chat model or from the espeak-ng synthesizer, and turns
// them into SaypYu with optional caching.
package phonetic
