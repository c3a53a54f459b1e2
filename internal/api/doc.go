// Package api contains the HTTP handlers, request/response models, and
// error mapping for the study generation endpoints. Handlers validate and
// decode requests, delegate to the service layer, and translate its typed
// failures into sanitized HTTP responses; no internal error detail or raw
// model output is ever exposed to clients.
package api
