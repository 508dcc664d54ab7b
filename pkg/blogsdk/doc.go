// Package blogsdk holds the wire types of the Inkwell API together with a
// small Go client for it.
//
// The server uses the same request types and validates them with
// [Validate] before any business logic runs, so client and server agree on
// field names and constraints.
//
// Typical use:
//
//	c := blogsdk.NewClient("http://localhost:8080")
//	tok, err := c.Login(ctx, "alice", "correct horse battery staple")
//	if err != nil {
//		return err
//	}
//	s := c.WithToken(tok.AccessToken)
//	me, err := s.Me(ctx)
//
// Errors returned by the client for non-2xx responses are *APIError values
// and can be inspected with errors.As.
package blogsdk
