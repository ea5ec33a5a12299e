package dto

// ShareRequest is the request body for sharing a list with a registered user
// by email.
type ShareRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UnshareRequest is the request body for revoking a user's access.
type UnshareRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
}

// SharedUserDTO is one entry of a list's shared-user roster. Email and
// display name are null when the id could not be resolved.
type SharedUserDTO struct {
	UID         string  `json:"uid"`
	Email       *string `json:"email"`
	DisplayName *string `json:"display_name"`
}
