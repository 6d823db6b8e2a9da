// Package cfptime provides a Go client for the CFPTime API, a public
// directory of conferences and open calls for papers.
//
// The API is documented at https://api.cfptime.org/api/docs. All
// endpoints are unauthenticated, read-only GETs returning JSON.
//
// Basic usage:
//
//	client, err := cfptime.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	confs, err := client.GetUpcoming(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, conf := range confs {
//	    fmt.Printf("%s (%s) - CFP closes %s\n", conf.Name, conf.Location(), conf.CFPDeadline)
//	}
//
// Transient failures (connection errors, timeouts, 5xx responses) are
// retried transparently with exponential backoff before an error is
// returned. All other failures surface once, as one of three typed
// errors: [NetworkError], [APIError], or [DecodeError].
package cfptime
