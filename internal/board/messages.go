package board

// Centralized user-facing texts. Handlers and templates must use these
// instead of inlining their own copies.
const (
	MsgAuthorLength  = "Name must be between 2 and 15 characters."
	MsgMessageLength = "Message must be between 5 and 1000 characters."
	MsgMessageEmpty  = "Message cannot be empty or whitespace only."
	MsgEmail         = "Invalid e-mail address."
	MsgIP            = "Invalid IP address."
	MsgTags          = "Only <b>, <i> and <s> tags are allowed."
	MsgCaptcha       = "Wrong verification answer."
	MsgRateLimit     = "You can submit your next post in %d min. %d sec."

	MsgCreateSuccess = "Post created! A mail with manage links was sent to your e-mail."
	MsgCreateFail    = "Could not save the post. Please try again later."
	MsgEditSuccess   = "Post updated."
	MsgDeleteSuccess = "Post deleted."
	MsgEditExpired   = "The edit period has expired."
	MsgDeleteExpired = "The delete period has expired."

	// Not-found and bad-token are deliberately indistinguishable to the user.
	MsgManageFail  = "Cannot locate or authorize this post."
	MsgStorageFail = "Something went wrong. Please try again later."

	MailSubject = "Manage your post!"
	MailText    = "Your post has been created!\n\nEdit: %s\nDelete: %s"
)
