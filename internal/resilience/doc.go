// Package resilience groups the fault tolerance helpers the browse
// service puts between itself and its upstreams: circuit breakers for
// the movie catalog, OpenAI, and Postgres, and retry with exponential
// backoff for transient failures.
//
// Usage:
//
//	cb := circuitbreaker.New(circuitbreaker.CatalogAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return client.SearchByGenre(ctx, genre, page)
//	})
//
//	err := retry.WithBackoff(ctx, retry.CatalogAPIConfig(), func() error {
//	    return fetchPage()
//	})
package resilience
