// Package resilience groups the fault tolerance helpers used around outbound
// calls to third-party collaborators (translation, geocoding, article text).
//
// Feed fetches deliberately use neither: a failing feed contributes nothing to
// the current request and is tried again on the next one.
//
//	cb := circuitbreaker.New(circuitbreaker.GeocoderConfig())
//	place, err := circuitbreaker.Do(cb, func() (Place, error) {
//	    return lookup(ctx, lat, lon)
//	})
//
//	err := retry.WithBackoff(ctx, retry.GeocoderConfig(), func() error {
//	    return call()
//	})
package resilience
