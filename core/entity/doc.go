// Package entity builds the prompt and the response schema for an entity
// lookup and defines the typed result decoded from a provider reply.
//
// An [EntityQuery] names the entity and steers the search: a type hint, free
// background text, an optional [Ontology] and the deep-search switch. Both
// [BuildPrompt] and [BuildSchema] are pure and deterministic.
package entity
