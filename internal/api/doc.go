// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts HTTP to the auth and task services and maps
// their errors to status codes and safe client messages.
package api
