package model

import "github.com/shopspring/decimal"

const (
	ArticleStateDeleted  = -1
	ArticleStateDisabled = 0
	ArticleStateEnabled  = 1
)

type ArticleGroup struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}

type Article struct {
	ID      int             `json:"id"`
	GroupID int             `json:"groupId"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Grade   int             `json:"grade"`
	State   int             `json:"state"`
}

// ArticleChange is one row of the admin batch-save form. A zero ID with a
// non-empty name means insert; Trash wins over State.
type ArticleChange struct {
	ID      int    `json:"id"`
	GroupID int    `json:"groupId"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Grade   int    `json:"grade"`
	State   int    `json:"state"`
	Trash   bool   `json:"trash"`
}

type CatalogGroup struct {
	ArticleGroup
	Articles []Article `json:"articles"`
}
