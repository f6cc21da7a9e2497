// Package parse extracts the JSON object a model returned from its raw text
// reply.
//
// By default decoding is strict: a surrounding markdown code fence is
// stripped and the rest must be exactly one JSON object, which is returned
// byte for byte. Anything else is an error, so a truncated or chatty reply
// never turns into a partial result.
//
// [WithRepair] opts into leniency for callers that prefer a best-effort
// object: near-JSON (single quotes, trailing commas, unquoted keys, missing
// closing brackets) is repaired with github.com/kaptinlin/jsonrepair, prose
// around the object is cut away and schema echoes such as
// {"type": "string", "value": "Glucose"} are unwrapped.
//
// The entry points are [JSONObject], which returns the object as raw JSON,
// and the generic [As], which decodes it into a Go value.
package parse
