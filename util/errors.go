package util

import "net/http"

var (
	DbHTTPErr            = newKind(http.StatusInternalServerError, "db", "database error")
	InternalHTTPErr      = newKind(http.StatusInternalServerError, "internal", "internal error")
	MalformedIdHTTPErr   = newKind(http.StatusBadRequest, "malformed_id", "id malformed")
	MalformedJSONHTTPErr = newKind(http.StatusBadRequest, "malformed_json", "malformed request body")
	TooManyRequestsErr   = newKind(http.StatusTooManyRequests, "too_many_requests", "too many requests")
)

// 400
var (
	ErrValidationFailed  = newKind(http.StatusBadRequest, "validation_failed", "validation failed")
	ErrIncorrectGender   = newKind(http.StatusBadRequest, "incorrect_gender", "gender must be Male or Female")
	ErrInvalidPagination = newKind(http.StatusBadRequest, "invalid_pagination", "invalid pagination")
	ErrBadImageLink      = newKind(http.StatusBadRequest, "bad_image_link", "image is not a valid link")
	ErrEmptyContent      = newKind(http.StatusBadRequest, "empty_content", "content must not be empty")
	ErrTagNotFound       = newKind(http.StatusBadRequest, "tag_not_found", "tag not found")
)

// 401
var (
	ErrInvalidCredentials = newKind(http.StatusUnauthorized, "invalid_credentials", "Wrong email or password")
	ErrUnauthorized       = newKind(http.StatusUnauthorized, "unauthorized", "unauthorized")
	ErrInvalidToken       = newKind(http.StatusUnauthorized, "invalid_token", "invalid token")
	ErrExpiredToken       = newKind(http.StatusUnauthorized, "expired_token", "token expired")
	ErrRevokedToken       = newKind(http.StatusUnauthorized, "revoked_token", "token revoked")
	ErrTokenNotFound      = newKind(http.StatusUnauthorized, "token_not_found", "token not found")
	ErrSessionInactive    = newKind(http.StatusUnauthorized, "session_inactive", "session is not active")
)

// 403
var (
	ErrForbiddenClosedCommunity       = newKind(http.StatusForbidden, "forbidden_closed_community", "community is closed to non members")
	ErrNotAdministrator               = newKind(http.StatusForbidden, "not_administrator", "user is not an administrator of the community")
	ErrAdministratorCannotUnsubscribe = newKind(http.StatusForbidden, "administrator_cannot_unsubscribe", "administrator cannot unsubscribe from the community")
	ErrNotCommentAuthor               = newKind(http.StatusForbidden, "not_comment_author", "user is not the author of the comment")
)

// 404
var (
	ErrUserNotFound           = newKind(http.StatusNotFound, "user_not_found", "user not found")
	ErrPostNotFound           = newKind(http.StatusNotFound, "post_not_found", "post not found")
	ErrCommentNotFound        = newKind(http.StatusNotFound, "comment_not_found", "comment not found")
	ErrCommunityNotFound      = newKind(http.StatusNotFound, "community_not_found", "community not found")
	ErrAddressElementNotFound = newKind(http.StatusNotFound, "address_element_not_found", "address element not found")
	ErrLikeNotFound           = newKind(http.StatusNotFound, "like_not_found", "like not found")
	ErrNotMember              = newKind(http.StatusNotFound, "not_member", "user is not a member of the community")
)

// 409
var (
	ErrDuplicateUser     = newKind(http.StatusConflict, "duplicate_user", "user with this email already exists")
	ErrAlreadyMember     = newKind(http.StatusConflict, "already_member", "user is already a member of the community")
	ErrLikeAlreadyExists = newKind(http.StatusConflict, "like_already_exists", "like already exists")
	ErrDuplicateTag      = newKind(http.StatusConflict, "duplicate_tag", "tag already exists")
)
