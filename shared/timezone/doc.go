// Package timezone keeps every timestamp the service produces in the single
// location configured for the application, so reservation date arithmetic and
// rental/return stamps agree regardless of where the process runs.
package timezone
