// Package api exposes the job listing, job application and company services
// over HTTP. Handlers decode and validate JSON payloads, call the services,
// and translate service errors into status codes and safe messages.
package api
