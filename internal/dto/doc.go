// Package dto defines the transfer representations exchanged between the
// service layer and its callers. Read shapes carry identity and timestamps,
// create payloads carry neither, and update payloads mark every optional
// field with a pointer so an absent field is distinguishable from an empty one.
package dto
