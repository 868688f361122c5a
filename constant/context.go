package constant

type contextKey string

// UserIDKey carries the authenticated tenant id in the request context.
const UserIDKey contextKey = "user_id"
