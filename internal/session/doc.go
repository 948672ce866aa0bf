// Package session supplies the sync layer with the signed-in identity.
//
// Sign-in itself happens elsewhere; this client only reads the bearer token
// that the sign-in flow leaves in a token file (or in configuration) and
// derives the user id and expiry from its claims. The file is watched, so a
// fresh sign-in or a sign-out takes effect without a restart.
package session
