package domain

// OwnedResource describes how a failed ownership lookup is reported for one kind of resource.
type OwnedResource struct {
	NotFoundMessage  string
	ForbiddenMessage string
}

var (
	CommentOwnership = OwnedResource{NotFoundMessage: MsgCommentToRemoveInvalid, ForbiddenMessage: MsgCommentNotOwned}
	ReplyOwnership   = OwnedResource{NotFoundMessage: MsgReplyToRemoveInvalid, ForbiddenMessage: MsgReplyNotOwned}
)

// Authorize checks the result of a scoped owner lookup against the acting user.
// found is false when the lookup matched no row.
func (r OwnedResource) Authorize(owner string, found bool, actor string) error {
	if !found {
		return NewNotFoundError(r.NotFoundMessage)
	}
	if owner != actor {
		return NewAuthorizationError(r.ForbiddenMessage)
	}
	return nil
}
