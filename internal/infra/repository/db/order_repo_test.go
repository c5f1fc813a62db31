package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	dbDao       *DbDao
	orderRepo   *OrderRepo
	paymentRepo *PaymentRepo
	buyer       model.User
	artwork     model.Artwork
}

func (suite *OrderRepoTestSuite) SetupSuite() {
	suite.dbDao = newTestDbDao(suite.T())
	suite.orderRepo = NewOrderRepo(suite.dbDao)
	suite.paymentRepo = NewPaymentRepo(suite.dbDao)
}

func (suite *OrderRepoTestSuite) SetupTest() {
	suite.dbDao.Exec("DELETE FROM payments")
	suite.dbDao.Exec("DELETE FROM orders")
	suite.dbDao.Exec("DELETE FROM artworks")
	suite.dbDao.Exec("DELETE FROM users")

	suite.buyer = model.User{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		HashedPassword: "x",
		Role:           model.RoleBuyer,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.buyer).Error)

	suite.artwork = model.Artwork{
		Name:        "Sunrise",
		Description: "oil on canvas",
		Price:       decimal.NewFromInt(100),
		ImageURL:    "http://img/sunrise.png",
		Category:    "painting",
		IsAvailable: true,
		ArtistID:    suite.buyer.UserID,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.artwork).Error)
}

func (suite *OrderRepoTestSuite) createOrder() *model.Order {
	order := &model.Order{
		BuyerID:    suite.buyer.UserID,
		ArtworkID:  suite.artwork.ArtworkID,
		Quantity:   2,
		TotalPrice: decimal.NewFromInt(200),
		Status:     model.OrderStatusPending,
	}
	created, err := suite.orderRepo.CreateOrder(context.Background(), order)
	require.NoError(suite.T(), err)
	return created
}

func (suite *OrderRepoTestSuite) TestCreateOrder() {
	order := suite.createOrder()

	require.NotZero(suite.T(), order.OrderID)
	require.False(suite.T(), order.CreatedAt.IsZero())

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPending, found.Status)
	require.True(suite.T(), decimal.NewFromInt(200).Equal(found.TotalPrice))
}

func (suite *OrderRepoTestSuite) TestTotalPriceSnapshotImmuneToPriceEdit() {
	ctx := context.Background()
	order := suite.createOrder()

	// 下單後調價, 既有訂單金額不動
	suite.artwork.Price = decimal.NewFromInt(150)
	require.NoError(suite.T(), suite.dbDao.Save(&suite.artwork).Error)

	found, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.NewFromInt(200).Equal(found.TotalPrice))
}

func (suite *OrderRepoTestSuite) TestListOrdersByStatus() {
	ctx := context.Background()
	order := suite.createOrder()

	pending, err := suite.orderRepo.ListOrdersByStatus(ctx, model.OrderStatusPending)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), pending, 1)

	require.NoError(suite.T(), suite.orderRepo.UpdateOrderStatus(ctx, order.OrderID, model.OrderStatusPaid))

	pending, err = suite.orderRepo.ListOrdersByStatus(ctx, model.OrderStatusPending)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), pending, 0)

	paid, err := suite.orderRepo.ListOrdersByStatus(ctx, model.OrderStatusPaid)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), paid, 1)
}

func (suite *OrderRepoTestSuite) TestCompletePaymentUpdatesBothRows() {
	ctx := context.Background()
	order := suite.createOrder()

	payment, err := suite.paymentRepo.CreatePayment(ctx, &model.Payment{
		OrderID: order.OrderID,
		Amount:  order.TotalPrice,
		Method:  model.PaymentMethodCard,
		Status:  model.PaymentStatusPending,
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.paymentRepo.CompletePayment(ctx, payment.PaymentID, order.OrderID))

	foundPayment, err := suite.paymentRepo.GetPaymentByID(ctx, payment.PaymentID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.PaymentStatusSuccess, foundPayment.Status)

	foundOrder, err := suite.orderRepo.GetOrderByID(ctx, order.OrderID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPaid, foundOrder.Status)
}

func (suite *OrderRepoTestSuite) TestListOrdersByBuyer() {
	ctx := context.Background()
	suite.createOrder()
	suite.createOrder()

	orders, err := suite.orderRepo.ListOrdersByBuyer(ctx, suite.buyer.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 2)

	none, err := suite.orderRepo.ListOrdersByBuyer(ctx, 9999)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), none, 0)
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
