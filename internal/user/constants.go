package user

// Log messages
const (
	LogMsgRegisterUserCalled = "RegisterUser called"
	LogMsgUserRegistered     = "User registered"
	LogErrFailedToCreateUser = "Failed to create user"
)

// Error messages
const (
	ErrMsgUsernameRequired = "username is required"
	ErrMsgUsernameTooLong  = "username must be at most %d characters"
	ErrMsgUsernameInvalid  = "username may only contain lowercase letters and digits"
)
