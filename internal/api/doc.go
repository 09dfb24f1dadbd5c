// Package api handles incoming HTTP requests for the travel blog: it reads
// path, query and body parameters, calls the services and writes JSON
// responses. Errors from lower layers are translated to status codes and
// safe messages in one place (errors.go) so no handler leaks internals.
package api
