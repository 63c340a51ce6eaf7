package web

type SuggestDedicationReq struct {
	SessionSN string   `json:"sessionSN"`
	Hints     []string `json:"hints,omitempty"`
}

type SuggestDedicationResp struct {
	Dedication string `json:"dedication"`
}
