package request_models

type ReviewRequest struct {
	Name      string `json:"name" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}
