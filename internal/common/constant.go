package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the expected authorization scheme. Matching is
// case-insensitive.
const BearerScheme = "Bearer"
