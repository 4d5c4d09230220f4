package constants

const (
	// SessionCookieName is the name of the session cookie issued to browsers.
	SessionCookieName = "task_session"

	// SessionKeyUsername is the session/context key holding the logged-in username.
	SessionKeyUsername = "username"

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 5
)
