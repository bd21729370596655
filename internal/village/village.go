package village

type Village struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
