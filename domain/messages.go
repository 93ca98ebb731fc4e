package domain

// Confirmation messages and placeholders shown to clients verbatim.
const (
	MsgCommentRemoved = "komentar berhasil dihapus"
	MsgReplyRemoved   = "balasan berhasil dihapus"
	MsgCommentLiked   = "berhasil menyukai komentar"
	MsgCommentUnliked = "berhasil membatalkan aksi menyukai komentar"

	DeletedCommentContent = "**komentar telah dihapus**"
	DeletedReplyContent   = "**balasan telah dihapus**"
)

// Not found / forbidden messages raised by the adapters.
const (
	MsgThreadNotFound         = "thread tidak ditemukan"
	MsgCommentThreadInvalid   = "komentar tidak dapat ditambahkan karena thread invalid"
	MsgCommentToRemoveInvalid = "komentar yang ingin dihapus invalid"
	MsgCommentNotOwned        = "Anda bukan pemilik komentar tersebut"
	MsgReplyParentInvalid     = "komentar atau thread invalid"
	MsgReplyToRemoveInvalid   = "balasan yang ingin dihapus invalid"
	MsgReplyNotOwned          = "Anda bukan pemilik balasan tersebut"
	MsgCommentToLikeInvalid   = "komentar yang ingin disukai invalid"
)
