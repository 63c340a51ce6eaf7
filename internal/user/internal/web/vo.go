package web

type LoginReq struct {
	Email string `json:"email"`
}

type EditReq struct {
	Nickname string `json:"nickname"`
}

type Profile struct {
	Id       int64  `json:"id,omitempty"`
	SN       string `json:"sn,omitempty"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
