package errors

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageWrongCredentials deliberately does not reveal which field was wrong.
	MessageWrongCredentials = "Wrong email or password"
	// MessageBadRequest is the generic message for rejected requests.
	MessageBadRequest = "Bad request"
	// MessageNoResults is returned when the backend found nothing matching the request.
	MessageNoResults = "No results"
	// MessageServerConfig is the generic message for server misconfiguration.
	MessageServerConfig = "Server configuration error"
	// MessageUpstream is returned when the computation engine fails.
	MessageUpstream = "Upstream request failed"
)
