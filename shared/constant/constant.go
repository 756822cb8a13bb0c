package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOwner   contextKey = "owner"
	ContextKeyTokenID contextKey = "token_id"
)

const (
	RequestParamPage  = "page"
	RequestParamLimit = "limit"
	RequestParamID    = "id"
)

const (
	RouteTodos = "/todos"
)

const DefaultValueLimit = 10

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderWWWAuthenticate    = "WWW-Authenticate"
	RequestHeaderLocation           = "Location"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	AuthSchemeBasic  = "Basic"
	AuthSchemeBearer = "Bearer"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)
