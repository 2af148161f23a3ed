// Package api is the HTTP client for the social analytics backend.
//
// All five endpoints return bare JSON arrays with no envelope and no paging
// metadata. Every failure (transport, non-2xx status, undecodable body) is a
// *TransportError wrapping ErrTransport.
package api
