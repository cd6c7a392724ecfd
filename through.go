package rx

import "github.com/zoobzio/pipz"

// Through runs every value of source through a pipz pipeline. The pipeline
// receives the subscription's context, so it is canceled on unsubscribe.
// The first pipeline error becomes the terminal error of the subscription.
//
// Example:
//
//	var (
//	    enrichID    = pipz.NewIdentity("enrich", "Event enrichment")
//	    lookupID    = pipz.NewIdentity("lookup", "User lookup")
//	    normalizeID = pipz.NewIdentity("normalize", "Event normalization")
//	)
//
//	enriched := rx.Through(events, pipz.NewSequence(enrichID,
//	    pipz.Apply(lookupID, lookupUser),
//	    pipz.Transform(normalizeID, normalize),
//	))
func Through[V any](source Observable[V], pipeline pipz.Chainable[V]) Observable[V] {
	return Observable[V]{logic: lift(source.logic, func(o Observer[V]) Observer[V] {
		return withNext(o, func(v V) {
			if !o.Active() {
				return
			}
			out, err := pipeline.Process(o.ctx, v)
			if err != nil {
				o.err(err)
				return
			}
			o.next(out)
		})
	})}
}
