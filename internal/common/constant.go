package common

// AuthHeaderName is the HTTP header used to carry the bearer credential
// on outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the access token in AuthHeaderName.
const BearerPrefix = "Bearer "
