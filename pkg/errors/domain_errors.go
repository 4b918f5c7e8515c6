package errors

var (
	// Identity / profile
	ErrUsernameTaken   = AlreadyExists("username is already taken")
	ErrEmailTaken      = AlreadyExists("email is already in use")
	ErrUserNotFound    = NotFound("user not found")
	ErrInvalidLogin    = Unauthorized("invalid email or password")
	ErrUsernameTooLong = InvalidArg("username must be 12 characters or fewer")
	ErrNicknameTooLong = InvalidArg("nickname must be 12 characters or fewer")
	ErrBioTooLong      = InvalidArg("bio must be 50 characters or fewer")
	ErrPasswordTooWeak = InvalidArg("password must be at least 8 characters")
	ErrNothingToUpdate = InvalidArg("fields were not modified")

	// Social graph
	ErrSelfRelation    = FailedPrecondition("users cannot target themselves")
	ErrRelationExists  = AlreadyExists("a friendship, request or block already exists between these users")
	ErrRequestNotFound = NotFound("friend request not found")
	ErrFriendNotFound  = NotFound("friendship not found")
	ErrBlockNotFound   = NotFound("block not found")

	// Conversations / messages
	ErrConversationName     = InvalidArg("conversation name is required")
	ErrNoRecipients         = InvalidArg("at least one recipient is required")
	ErrRecipientInvalid     = NotFound("one or more recipients was not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrNotParticipant       = Forbidden("user is not a participant of this conversation")
	ErrEmptyMessage         = InvalidArg("message content is required")
)
