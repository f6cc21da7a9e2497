// Package client runs entity lookups from the caller's side. It builds the
// prompt and response schema for an [entity.EntityQuery], sends it through a
// [Completer] chosen by the provider's [Route], and decodes the reply into an
// [entity.EntityResult].
//
// Two completers exist: [LocalCompleter] calls the provider in-process with
// the caller's key, [ProxyCompleter] posts the request to a running server's
// proxy endpoint. [DefaultRoutes] sends Google Gemini locally and every other
// provider through the proxy.
//
//	c, err := client.New(
//	    client.WithDefaultAPIKey(os.Getenv("API_KEY")),
//	    client.WithProxyURL("http://localhost:3000"),
//	)
//	res, err := c.FetchEntityInfo(ctx, registry.OpenAI, key, entity.EntityQuery{
//	    OriginalName: "glucose",
//	    Ontology:     entity.OntologyChEBI,
//	})
package client
