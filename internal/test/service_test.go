package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sportunion/clubmart/internal"
	mock_internal "github.com/sportunion/clubmart/internal/mock"
	"github.com/sportunion/clubmart/internal/model"
)

// 79927398713 and 4539148803436467 are valid Luhn numbers.
const keyCode = "79927398713"

var _ = Describe("Service", func() {
	var (
		srv    internal.IService
		rep    *mock_internal.MockIRepository
		member model.Member
	)
	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		rep = mock_internal.NewMockIRepository(ctrl)
		srv = internal.NewService(rep, "adminpw", "secret")

		member = model.Member{
			ID:        1,
			LastName:  "Muster",
			FirstName: "Max",
			Email:     "max@example.org",
			KeyCode:   internal.GetHash(keyCode),
		}
	})
	Context("AuthenticateMember", func() {
		It("accepts a valid key code", func() {
			ctx := context.Background()

			rep.EXPECT().GetMember(ctx, 1).Return(member, nil)

			m, err := srv.AuthenticateMember(ctx, 1, keyCode)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(m.FullName()).To(Equal("Muster Max"))
		})
		It("rejects a key code with a bad check digit", func() {
			ctx := context.Background()

			_, err := srv.AuthenticateMember(ctx, 1, "79927398710")
			Expect(err).Should(Equal(internal.ErrKeyCodeInvalid))
		})
		It("rejects a wrong key code", func() {
			ctx := context.Background()
			other := member
			other.KeyCode = internal.GetHash("4539148803436467")

			rep.EXPECT().GetMember(ctx, 1).Return(other, nil)

			_, err := srv.AuthenticateMember(ctx, 1, keyCode)
			Expect(err).Should(Equal(internal.ErrInvalidCredentials))
		})
	})
	Context("SubmitOrder", func() {
		It("persists one line per article with the current price", func() {
			ctx := context.Background()
			articles := map[int]model.Article{
				10: {ID: 10, Name: "Cola", Price: decimal.RequireFromString("1.50"), State: model.ArticleStateEnabled},
				11: {ID: 11, Name: "Chips", Price: decimal.RequireFromString("2.00"), State: model.ArticleStateEnabled},
			}
			input := model.SubmitOrderInput{
				MemberID: 1,
				KeyCode:  keyCode,
				Articles: []model.OrderInput{{ArticleID: 10, Amount: 2}, {ArticleID: 11, Amount: 1}},
			}

			rep.EXPECT().GetMember(ctx, 1).Return(member, nil)
			rep.EXPECT().GetActiveArticlesIndexedByID(ctx).Return(articles, nil)
			rep.EXPECT().AddOrders(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, lines []model.OrderLine) error {
				Expect(lines).To(HaveLen(2))
				Expect(lines[0].Price.Equal(decimal.RequireFromString("1.50"))).To(BeTrue())
				Expect(lines[1].Price.Equal(decimal.RequireFromString("2.00"))).To(BeTrue())
				Expect(lines[0].BillSendTime).To(BeNil())
				Expect(lines[0].SourceIP).To(Equal("10.0.0.7"))
				return nil
			})

			confirmation, err := srv.SubmitOrder(ctx, input, "10.0.0.7")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(confirmation.Lines).To(Equal(2))
			Expect(confirmation.Total.Equal(decimal.RequireFromString("5.00"))).To(BeTrue())
		})
		It("rejects an empty order", func() {
			ctx := context.Background()

			_, err := srv.SubmitOrder(ctx, model.SubmitOrderInput{MemberID: 1, KeyCode: keyCode}, "")
			Expect(err).Should(Equal(internal.ErrEmptyOrder))
		})
		It("rejects a non-positive amount", func() {
			ctx := context.Background()
			input := model.SubmitOrderInput{
				MemberID: 1,
				KeyCode:  keyCode,
				Articles: []model.OrderInput{{ArticleID: 10, Amount: 0}},
			}

			_, err := srv.SubmitOrder(ctx, input, "")
			Expect(err).Should(Equal(internal.ErrBadAmount))
		})
		It("persists nothing when one article is unknown", func() {
			ctx := context.Background()
			articles := map[int]model.Article{
				10: {ID: 10, Name: "Cola", Price: decimal.RequireFromString("1.50"), State: model.ArticleStateEnabled},
			}
			input := model.SubmitOrderInput{
				MemberID: 1,
				KeyCode:  keyCode,
				Articles: []model.OrderInput{{ArticleID: 10, Amount: 1}, {ArticleID: 99, Amount: 1}},
			}

			rep.EXPECT().GetMember(ctx, 1).Return(member, nil)
			rep.EXPECT().GetActiveArticlesIndexedByID(ctx).Return(articles, nil)

			_, err := srv.SubmitOrder(ctx, input, "")
			Expect(err).Should(Equal(internal.ErrUnknownArticle))
		})
	})
	Context("GetStatement", func() {
		It("builds months from the repository lines", func() {
			ctx := context.Background()
			from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
			to := from.AddDate(0, 1, 0)
			lines := []model.OrderLine{
				{ID: 1, MemberID: 1, ArticleID: 10, Amount: 2, Price: decimal.RequireFromString("1.50"), OrderTime: from.Add(12 * time.Hour)},
			}

			rep.EXPECT().GetOrderLines(ctx, 1, from, to).Return(lines, nil)
			rep.EXPECT().GetArticleNamesIndexedByID(ctx).Return(map[int]string{10: "Cola"}, nil)

			months, err := srv.GetStatement(ctx, 1, from, to)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(months).To(HaveLen(1))
			Expect(months[0].Open.Equal(decimal.RequireFromString("3.00"))).To(BeTrue())
		})
		It("fails when the repository fails", func() {
			ctx := context.Background()
			from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)
			to := from.AddDate(0, 1, 0)
			e := errors.New("some error")

			rep.EXPECT().GetOrderLines(ctx, 1, from, to).Return(nil, e)

			_, err := srv.GetStatement(ctx, 1, from, to)
			Expect(err).Should(Equal(e))
		})
	})
	Context("SaveArticles", func() {
		It("updates rows with an id and inserts rows without", func() {
			ctx := context.Background()
			changes := []model.ArticleChange{
				{ID: 10, GroupID: 1, Name: "Cola", Price: "1,50", Grade: 1, State: model.ArticleStateEnabled},
				{GroupID: 1, Name: "Spritzer", Price: "2.20", Grade: 2, State: model.ArticleStateEnabled},
			}

			rep.EXPECT().UpdateArticle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a model.Article) error {
				Expect(a.ID).To(Equal(10))
				Expect(a.Price.Equal(decimal.RequireFromString("1.50"))).To(BeTrue())
				return nil
			})
			rep.EXPECT().AddArticle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a model.Article) error {
				Expect(a.Name).To(Equal("Spritzer"))
				Expect(a.Price.Equal(decimal.RequireFromString("2.20"))).To(BeTrue())
				return nil
			})

			err := srv.SaveArticles(ctx, changes)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("marks trashed rows as deleted", func() {
			ctx := context.Background()
			changes := []model.ArticleChange{
				{ID: 10, GroupID: 1, Name: "Cola", Price: "1,50", Trash: true},
			}

			rep.EXPECT().UpdateArticle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a model.Article) error {
				Expect(a.State).To(Equal(model.ArticleStateDeleted))
				return nil
			})

			err := srv.SaveArticles(ctx, changes)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("rejects an unparseable price", func() {
			ctx := context.Background()
			changes := []model.ArticleChange{
				{ID: 10, GroupID: 1, Name: "Cola", Price: "abc"},
			}

			err := srv.SaveArticles(ctx, changes)
			Expect(err).Should(Equal(internal.ErrBadPrice))
		})
	})
	Context("ParsePrice", func() {
		It("accepts comma and point separators", func() {
			for input, want := range map[string]string{
				"1,50":     "1.50",
				"2.20":     "2.20",
				"1.234,56": "1234.56",
				"1,234.56": "1234.56",
				"3":        "3",
			} {
				price, err := internal.ParsePrice(input)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(price.Equal(decimal.RequireFromString(want))).To(BeTrue(), "input %q", input)
			}
		})
	})
	Context("Admin sessions", func() {
		It("issues and verifies a token", func() {
			token, err := srv.AdminLogin("adminpw")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(srv.VerifyAdminToken(token)).Should(Succeed())
		})
		It("rejects a wrong password", func() {
			_, err := srv.AdminLogin("nope")
			Expect(err).Should(Equal(internal.ErrInvalidCredentials))
		})
		It("rejects a garbage token", func() {
			Expect(srv.VerifyAdminToken("garbage")).ShouldNot(Succeed())
		})
	})
})
