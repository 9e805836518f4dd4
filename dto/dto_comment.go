package dto

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
