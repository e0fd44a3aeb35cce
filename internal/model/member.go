package model

type Member struct {
	ID        int    `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	KeyCode   string `json:"-"`
}

func (m Member) FullName() string {
	return m.LastName + " " + m.FirstName
}
