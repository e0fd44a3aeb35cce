package internal

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/sportunion/clubmart/internal/migrations"
	"github.com/sportunion/clubmart/internal/model"
)

const (
	articleFields = "id, group_id, name, price, grade, state"
	orderFields   = "id, member_id, article_id, amount, price, order_time, bill_send_time"
	memberFields  = "id, last_name, first_name, email, key_code"
)

type IRepository interface {
	GetArticleGroups(context.Context) ([]model.ArticleGroup, error)
	AddArticleGroup(context.Context, string, int) (int, error)
	RenameArticleGroup(context.Context, int, string) error

	GetArticles(ctx context.Context, groupID int, activeOnly bool) ([]model.Article, error)
	GetActiveArticlesIndexedByID(context.Context) (map[int]model.Article, error)
	GetArticleNamesIndexedByID(context.Context) (map[int]string, error)
	AddArticle(context.Context, model.Article) error
	UpdateArticle(context.Context, model.Article) error

	GetMember(context.Context, int) (model.Member, error)
	GetMembers(context.Context, []int) ([]model.Member, error)

	AddOrders(context.Context, []model.OrderLine) error
	GetOrderLines(ctx context.Context, memberID int, from, to time.Time) ([]model.OrderLine, error)
	GetUnbilledOrdersBefore(ctx context.Context, memberID int, cutoff time.Time) ([]model.OrderLine, error)
	BillOrders(ctx context.Context, orderIDs []int, sendTime time.Time, send func() error) error
}

type Repository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	err = migrations.Up(db)
	if err != nil {
		return nil, err
	}

	return &Repository{DB: db, Logger: logger}, nil
}

func (r Repository) GetArticleGroups(ctx context.Context) ([]model.ArticleGroup, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, grade FROM article_groups ORDER BY grade")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.ArticleGroup
	for rows.Next() {
		var g model.ArticleGroup
		err = rows.Scan(&g.ID, &g.Name, &g.Grade)
		if err != nil {
			return nil, err
		}

		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (r Repository) AddArticleGroup(ctx context.Context, name string, grade int) (int, error) {
	var id int
	row := r.DB.QueryRowContext(ctx, "INSERT INTO article_groups (name, grade) VALUES ($1, $2) RETURNING id", name, grade)

	err := row.Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r Repository) RenameArticleGroup(ctx context.Context, id int, name string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE article_groups SET name = $1 WHERE id = $2", name, id)
	return err
}

func (r Repository) GetArticles(ctx context.Context, groupID int, activeOnly bool) ([]model.Article, error) {
	query := "SELECT " + articleFields + " FROM articles WHERE group_id = $1 AND state > -1 ORDER BY grade"
	if activeOnly {
		query = "SELECT " + articleFields + " FROM articles WHERE group_id = $1 AND state = 1 ORDER BY grade"
	}

	rows, err := r.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err = rows.Scan(&a.ID, &a.GroupID, &a.Name, &a.Price, &a.Grade, &a.State)
		if err != nil {
			return nil, err
		}

		articles = append(articles, a)
	}

	return articles, rows.Err()
}

func (r Repository) GetActiveArticlesIndexedByID(ctx context.Context) (map[int]model.Article, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+articleFields+" FROM articles WHERE state = 1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make(map[int]model.Article)
	for rows.Next() {
		var a model.Article
		err = rows.Scan(&a.ID, &a.GroupID, &a.Name, &a.Price, &a.Grade, &a.State)
		if err != nil {
			return nil, err
		}

		articles[a.ID] = a
	}

	return articles, rows.Err()
}

func (r Repository) GetArticleNamesIndexedByID(ctx context.Context) (map[int]string, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM articles")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int]string)
	for rows.Next() {
		var (
			id   int
			name string
		)
		err = rows.Scan(&id, &name)
		if err != nil {
			return nil, err
		}

		names[id] = name
	}

	return names, rows.Err()
}

func (r Repository) AddArticle(ctx context.Context, a model.Article) error {
	_, err := r.DB.ExecContext(ctx, "INSERT INTO articles (group_id, name, price, grade, state) VALUES ($1, $2, $3, $4, $5)",
		a.GroupID, a.Name, a.Price, a.Grade, a.State)
	return err
}

func (r Repository) UpdateArticle(ctx context.Context, a model.Article) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE articles SET group_id = $1, name = $2, price = $3, grade = $4, state = $5 WHERE id = $6",
		a.GroupID, a.Name, a.Price, a.Grade, a.State, a.ID)
	return err
}

func (r Repository) GetMember(ctx context.Context, id int) (model.Member, error) {
	var m model.Member
	row := r.DB.QueryRowContext(ctx, "SELECT "+memberFields+" FROM members WHERE id = $1", id)

	err := row.Scan(&m.ID, &m.LastName, &m.FirstName, &m.Email, &m.KeyCode)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Member{}, ErrNoRecords
	}
	if err != nil {
		return model.Member{}, err
	}

	return m, nil
}

// GetMembers returns the members with the given ids, or every member when ids
// is empty, ordered by name.
func (r Repository) GetMembers(ctx context.Context, ids []int) ([]model.Member, error) {
	query := "SELECT " + memberFields + " FROM members ORDER BY last_name, first_name"
	args := make([]interface{}, 0, 1)
	if len(ids) > 0 {
		query = "SELECT " + memberFields + " FROM members WHERE id = ANY($1) ORDER BY last_name, first_name"
		pgIDs := make([]int32, len(ids))
		for i, id := range ids {
			pgIDs[i] = int32(id)
		}
		args = append(args, pgIDs)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		err = rows.Scan(&m.ID, &m.LastName, &m.FirstName, &m.Email, &m.KeyCode)
		if err != nil {
			return nil, err
		}

		members = append(members, m)
	}

	return members, rows.Err()
}

// AddOrders inserts every line in one transaction. A failing insert rolls the
// whole submission back.
func (r Repository) AddOrders(ctx context.Context, lines []model.OrderLine) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, l := range lines {
		_, err = tx.ExecContext(ctx, "INSERT INTO orders (member_id, article_id, amount, price, order_time, source_ip) VALUES ($1, $2, $3, $4, $5, $6)",
			l.MemberID, l.ArticleID, l.Amount, l.Price, l.OrderTime, l.SourceIP)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// GetOrderLines returns the lines with from <= order_time < to, oldest first.
// memberID 0 selects all members.
func (r Repository) GetOrderLines(ctx context.Context, memberID int, from, to time.Time) ([]model.OrderLine, error) {
	query := "SELECT " + orderFields + " FROM orders WHERE order_time >= $1 AND order_time < $2 ORDER BY order_time"
	args := []interface{}{from, to}
	if memberID != 0 {
		query = "SELECT " + orderFields + " FROM orders WHERE member_id = $1 AND order_time >= $2 AND order_time < $3 ORDER BY order_time"
		args = []interface{}{memberID, from, to}
	}

	return r.queryOrderLines(ctx, query, args...)
}

func (r Repository) GetUnbilledOrdersBefore(ctx context.Context, memberID int, cutoff time.Time) ([]model.OrderLine, error) {
	return r.queryOrderLines(ctx,
		"SELECT "+orderFields+" FROM orders WHERE member_id = $1 AND bill_send_time IS NULL AND order_time <= $2 ORDER BY order_time",
		memberID, cutoff)
}

func (r Repository) queryOrderLines(ctx context.Context, query string, args ...interface{}) ([]model.OrderLine, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []model.OrderLine
	for rows.Next() {
		var (
			l    model.OrderLine
			sent sql.NullTime
		)
		err = rows.Scan(&l.ID, &l.MemberID, &l.ArticleID, &l.Amount, &l.Price, &l.OrderTime, &sent)
		if err != nil {
			return nil, err
		}
		if sent.Valid {
			t := sent.Time
			l.BillSendTime = &t
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// BillOrders marks the given lines as billed and calls send inside the same
// transaction. The marks only survive when send returns nil; a failing send
// or a failing update rolls everything back, so a line is never billed
// without its invoice going out.
func (r Repository) BillOrders(ctx context.Context, orderIDs []int, sendTime time.Time, send func() error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, id := range orderIDs {
		_, err = tx.ExecContext(ctx, "UPDATE orders SET bill_send_time = $1 WHERE id = $2", sendTime, id)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	err = send()
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
