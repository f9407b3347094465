package queries_test

import (
	"context"

	"pizzeria/internal/core/application/usecases/queries"
)

func (suite *ReadModelTestSuite) TestListFeedback_EmptyDatabase_ReturnsEmptySlice() {
	got, err := queries.NewListFeedbackQueryHandler(suite.db).Handle(context.Background(), queries.NewListFeedbackQuery())

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *ReadModelTestSuite) TestListFeedback_ReturnsRatingsWithCustomer() {
	c := suite.addCustomer("C1", "Nimal", 0)
	first := suite.addOrder(c, true, 3)
	second := suite.addOrder(nil, true, 3)
	suite.addOrder(c, true, 3)
	suite.addFeedback(first, 5, "  hot and fast ")
	suite.addFeedback(second, 2, "")

	got, err := queries.NewListFeedbackQueryHandler(suite.db).Handle(context.Background(), queries.NewListFeedbackQuery())
	suite.Require().NoError(err)

	suite.Require().Len(got, 2)
	suite.Equal(first.ID().String(), got[0].OrderID)
	suite.Equal("Nimal", got[0].CustomerName)
	suite.Equal(5, got[0].Rating)
	suite.Equal("hot and fast", got[0].Comment)
	fb, _ := first.Feedback()
	suite.Equal(fb.ID(), got[0].ID)

	suite.Equal(second.ID().String(), got[1].OrderID)
	suite.Empty(got[1].CustomerName)
	suite.Equal(2, got[1].Rating)
}

func (suite *ReadModelTestSuite) TestListFeedback_QueryNotConstructed() {
	_, err := queries.NewListFeedbackQueryHandler(suite.db).Handle(context.Background(), queries.ListFeedbackQuery{})

	suite.ErrorIs(err, queries.ErrListFeedbackQueryIsNotConstructed)
}
