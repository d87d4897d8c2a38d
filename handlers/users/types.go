package users

// Constants for error messages
const (
	ErrUserNotFound       = "User not found"
	ErrFailedFetchUsers   = "Failed to fetch users"
	ErrFailedFetchStats   = "Failed to fetch user statistics"
)
