package dictapimodels

type ProjectView struct {
	ID   string `json:"id"`
	Name string `json:"name"` // название проекта/заказчика
}
