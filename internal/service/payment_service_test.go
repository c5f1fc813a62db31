package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	dbDao          *db.DbDao
	paymentService IPaymentService

	order model.Order
}

func (suite *PaymentServiceTestSuite) SetupSuite() {
	suite.dbDao = newTestDbDao(suite.T())
	paymentRepo := db.NewPaymentRepo(suite.dbDao)
	orderRepo := db.NewOrderRepo(suite.dbDao)
	suite.paymentService = NewPaymentService(paymentRepo, orderRepo, nil)
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	cleanTables(suite.dbDao)

	buyer := model.User{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com",
		HashedPassword: "x", Role: model.RoleBuyer, IsVerified: true,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&buyer).Error)

	artist := model.User{
		FirstName: "Vincent", LastName: "Gogh", Email: "vincent@x.com",
		HashedPassword: "x", Role: model.RoleArtist, IsVerified: true,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&artist).Error)

	artwork := model.Artwork{
		Name: "Sunrise", Price: decimal.NewFromInt(100),
		Category: "painting", IsAvailable: true, ArtistID: artist.UserID,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&artwork).Error)

	suite.order = model.Order{
		BuyerID: buyer.UserID, ArtworkID: artwork.ArtworkID,
		Quantity: 2, TotalPrice: decimal.NewFromInt(200),
		Status: model.OrderStatusPending,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.order).Error)
}

func (suite *PaymentServiceTestSuite) TestCreatePaymentValidation() {
	ctx := context.Background()

	_, err := suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), "cash")
	require.ErrorIs(suite.T(), err, ErrInvalidPayMethod)

	_, err = suite.paymentService.CreatePayment(ctx, 9999, decimal.NewFromInt(200), model.PaymentMethodCard)
	require.ErrorIs(suite.T(), err, ErrOrderNotFound)

	// 金額必須等於訂單成交金額
	_, err = suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(199), model.PaymentMethodCard)
	require.ErrorIs(suite.T(), err, ErrAmountMismatch)
}

func (suite *PaymentServiceTestSuite) TestCompletePaymentMarksOrderPaid() {
	ctx := context.Background()

	payment, err := suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), model.PaymentMethodCard)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.PaymentStatusPending, payment.Status)

	completed, err := suite.paymentService.CompletePayment(ctx, payment.PaymentID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.PaymentStatusSuccess, completed.Status)

	var order model.Order
	require.NoError(suite.T(), suite.dbDao.First(&order, suite.order.OrderID).Error)
	require.Equal(suite.T(), model.OrderStatusPaid, order.Status)
}

func (suite *PaymentServiceTestSuite) TestCompletePaymentTwice() {
	ctx := context.Background()

	payment, err := suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), model.PaymentMethodTransfer)
	require.NoError(suite.T(), err)

	_, err = suite.paymentService.CompletePayment(ctx, payment.PaymentID)
	require.NoError(suite.T(), err)

	_, err = suite.paymentService.CompletePayment(ctx, payment.PaymentID)
	require.ErrorIs(suite.T(), err, ErrPaymentNotPending)
}

func (suite *PaymentServiceTestSuite) TestFailPaymentLeavesOrderPending() {
	ctx := context.Background()

	payment, err := suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), model.PaymentMethodCard)
	require.NoError(suite.T(), err)

	failed, err := suite.paymentService.FailPayment(ctx, payment.PaymentID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.PaymentStatusFailed, failed.Status)

	var order model.Order
	require.NoError(suite.T(), suite.dbDao.First(&order, suite.order.OrderID).Error)
	require.Equal(suite.T(), model.OrderStatusPending, order.Status)

	// 失敗後可再記一筆新付款
	retry, err := suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), model.PaymentMethodTransfer)
	require.NoError(suite.T(), err)

	_, err = suite.paymentService.CompletePayment(ctx, retry.PaymentID)
	require.NoError(suite.T(), err)

	payments, err := suite.paymentService.GetPaymentsByOrder(ctx, suite.order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), payments, 2)
}

func (suite *PaymentServiceTestSuite) TestCreatePaymentOnPaidOrder() {
	ctx := context.Background()

	payment, err := suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), model.PaymentMethodCard)
	require.NoError(suite.T(), err)

	_, err = suite.paymentService.CompletePayment(ctx, payment.PaymentID)
	require.NoError(suite.T(), err)

	_, err = suite.paymentService.CreatePayment(ctx, suite.order.OrderID, decimal.NewFromInt(200), model.PaymentMethodCard)
	require.ErrorIs(suite.T(), err, ErrOrderNotPayable)
}

func (suite *PaymentServiceTestSuite) TestPaymentNotFound() {
	_, err := suite.paymentService.CompletePayment(context.Background(), 9999)
	require.ErrorIs(suite.T(), err, ErrPaymentNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
