package internal

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/theplant/luhn"

	"github.com/sportunion/clubmart/internal/model"
)

type IService interface {
	AuthenticateMember(context.Context, int, string) (model.Member, error)
	SubmitOrder(ctx context.Context, input model.SubmitOrderInput, sourceIP string) (model.OrderConfirmation, error)
	GetStatement(ctx context.Context, memberID int, from, to time.Time) ([]model.MonthStatement, error)
	GetYearStatement(ctx context.Context, memberID, year int) ([]model.MonthStatement, error)
	GetCatalog(ctx context.Context, activeOnly bool) ([]model.CatalogGroup, error)
	SaveArticles(context.Context, []model.ArticleChange) error
	AddArticleGroup(context.Context, string, int) (int, error)
	RenameArticleGroup(context.Context, int, string) error
	AdminLogin(string) (string, error)
	VerifyAdminToken(string) error
}

type Service struct {
	Repository    IRepository
	adminPassword string
	secret        string
	now           func() time.Time
}

func NewService(repository IRepository, adminPassword, secret string) *Service {
	return &Service{Repository: repository, adminPassword: adminPassword, secret: secret, now: time.Now}
}

// AuthenticateMember resolves a member by id and key code. Key codes are
// numeric and carry a Luhn check digit, so typos on the keypad are rejected
// before the database is asked.
func (s Service) AuthenticateMember(ctx context.Context, memberID int, keyCode string) (model.Member, error) {
	code, err := strconv.Atoi(strings.TrimSpace(keyCode))
	if err != nil || !luhn.Valid(code) {
		return model.Member{}, ErrKeyCodeInvalid
	}

	member, err := s.Repository.GetMember(ctx, memberID)
	if err != nil {
		return model.Member{}, err
	}

	if member.KeyCode != GetHash(keyCode) {
		return model.Member{}, ErrInvalidCredentials
	}
	return member, nil
}

func (s Service) SubmitOrder(ctx context.Context, input model.SubmitOrderInput, sourceIP string) (model.OrderConfirmation, error) {
	if len(input.Articles) == 0 {
		return model.OrderConfirmation{}, ErrEmptyOrder
	}
	for _, a := range input.Articles {
		if a.Amount <= 0 {
			return model.OrderConfirmation{}, ErrBadAmount
		}
	}

	member, err := s.AuthenticateMember(ctx, input.MemberID, input.KeyCode)
	if err != nil {
		return model.OrderConfirmation{}, err
	}

	articles, err := s.Repository.GetActiveArticlesIndexedByID(ctx)
	if err != nil {
		return model.OrderConfirmation{}, err
	}

	now := s.now()
	total := decimal.Zero
	lines := make([]model.OrderLine, 0, len(input.Articles))
	for _, a := range input.Articles {
		article, ok := articles[a.ArticleID]
		if !ok {
			return model.OrderConfirmation{}, ErrUnknownArticle
		}

		lines = append(lines, model.OrderLine{
			MemberID:  member.ID,
			ArticleID: article.ID,
			Amount:    a.Amount,
			Price:     article.Price,
			OrderTime: now,
			SourceIP:  sourceIP,
		})
		total = total.Add(article.Price.Mul(decimal.NewFromInt(int64(a.Amount))))
	}

	err = s.Repository.AddOrders(ctx, lines)
	if err != nil {
		return model.OrderConfirmation{}, err
	}

	return model.OrderConfirmation{MemberName: member.FullName(), Lines: len(lines), Total: total}, nil
}

// GetStatement builds the month-by-month statement for one member, or for
// the whole club when memberID is 0. Zero times select the default range.
func (s Service) GetStatement(ctx context.Context, memberID int, from, to time.Time) ([]model.MonthStatement, error) {
	if from.IsZero() || to.IsZero() {
		from, to = DefaultStatementRange(s.now())
	}

	lines, err := s.Repository.GetOrderLines(ctx, memberID, from, to)
	if err != nil {
		return nil, err
	}

	names, err := s.Repository.GetArticleNamesIndexedByID(ctx)
	if err != nil {
		return nil, err
	}

	return BuildStatement(lines, names, from, to), nil
}

func (s Service) GetYearStatement(ctx context.Context, memberID, year int) ([]model.MonthStatement, error) {
	if year == 0 {
		year = s.now().Year()
	}
	from, to := YearRange(year)
	return s.GetStatement(ctx, memberID, from, to)
}

func (s Service) GetCatalog(ctx context.Context, activeOnly bool) ([]model.CatalogGroup, error) {
	groups, err := s.Repository.GetArticleGroups(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]model.CatalogGroup, 0, len(groups))
	for _, g := range groups {
		articles, err := s.Repository.GetArticles(ctx, g.ID, activeOnly)
		if err != nil {
			return nil, err
		}

		catalog = append(catalog, model.CatalogGroup{ArticleGroup: g, Articles: articles})
	}

	return catalog, nil
}

// SaveArticles applies one admin batch: rows with an id are updated, rows
// with a name but no id are inserted, trashed rows get the deleted state.
func (s Service) SaveArticles(ctx context.Context, changes []model.ArticleChange) error {
	for _, ch := range changes {
		price, err := ParsePrice(ch.Price)
		if err != nil {
			return err
		}

		state := ch.State
		if ch.Trash {
			state = model.ArticleStateDeleted
		}

		article := model.Article{
			ID:      ch.ID,
			GroupID: ch.GroupID,
			Name:    ch.Name,
			Price:   price,
			Grade:   ch.Grade,
			State:   state,
		}

		switch {
		case ch.ID != 0:
			err = s.Repository.UpdateArticle(ctx, article)
		case ch.Name != "":
			err = s.Repository.AddArticle(ctx, article)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (s Service) AddArticleGroup(ctx context.Context, name string, grade int) (int, error) {
	return s.Repository.AddArticleGroup(ctx, name, grade)
}

func (s Service) RenameArticleGroup(ctx context.Context, id int, name string) error {
	return s.Repository.RenameArticleGroup(ctx, id, name)
}

func (s Service) AdminLogin(password string) (string, error) {
	if s.adminPassword == "" || GetHash(password) != GetHash(s.adminPassword) {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"admin": true,
		"exp":   s.now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s Service) VerifyAdminToken(tokenString string) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil {
		return err
	}

	if admin, ok := claims["admin"].(bool); !ok || !admin {
		return ErrInvalidCredentials
	}
	return nil
}

// ParsePrice accepts admin price input with either comma or point decimal
// separators, including thousands separators ("1.234,56" and "1,234.56").
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	pos1 := strings.Index(s, ".")
	pos2 := strings.Index(s, ",")
	if pos1 != -1 && pos2 != -1 {
		if pos1 < pos2 {
			s = strings.ReplaceAll(s, ".", "")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	s = strings.ReplaceAll(s, ",", ".")

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrBadPrice
	}
	return price, nil
}

func GetHash(s string) string {
	h := sha256.New()
	ph := h.Sum([]byte(s))
	return base64.StdEncoding.EncodeToString(ph)
}
