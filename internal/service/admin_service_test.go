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

type AdminServiceTestSuite struct {
	suite.Suite
	dbDao        *db.DbDao
	adminService IAdminService

	order   model.Order
	artwork model.Artwork
	buyer   model.User
}

func (suite *AdminServiceTestSuite) SetupSuite() {
	suite.dbDao = newTestDbDao(suite.T())
	userRepo := db.NewUserRepo(suite.dbDao)
	artworkRepo := db.NewArtworkRepo(suite.dbDao)
	orderRepo := db.NewOrderRepo(suite.dbDao)
	paymentRepo := db.NewPaymentRepo(suite.dbDao)
	suite.adminService = NewAdminService(userRepo, artworkRepo, orderRepo, paymentRepo, nil)
}

func (suite *AdminServiceTestSuite) SetupTest() {
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

	suite.artwork = model.Artwork{
		Name: "Sunrise", Price: decimal.NewFromInt(100),
		Category: "painting", IsAvailable: true, ArtistID: artist.UserID,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.artwork).Error)

	suite.buyer = buyer
	suite.order = model.Order{
		BuyerID: buyer.UserID, ArtworkID: suite.artwork.ArtworkID,
		Quantity: 1, TotalPrice: decimal.NewFromInt(100),
		Status: model.OrderStatusPending,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.order).Error)
}

func (suite *AdminServiceTestSuite) TestGetAllUsers() {
	users, err := suite.adminService.GetAllUsers(context.Background())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 2)
}

func (suite *AdminServiceTestSuite) TestGetOrdersByStatus() {
	ctx := context.Background()

	orders, err := suite.adminService.GetOrdersByStatus(ctx, model.OrderStatusPending)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 1)

	orders, err = suite.adminService.GetOrdersByStatus(ctx, model.OrderStatusShipped)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 0)

	_, err = suite.adminService.GetOrdersByStatus(ctx, "refunded")
	require.Error(suite.T(), err)
}

func (suite *AdminServiceTestSuite) TestUpdateOrderStatusForwardOnly() {
	ctx := context.Background()

	// pending 不能直接跳 shipped
	_, err := suite.adminService.UpdateOrderStatus(ctx, suite.order.OrderID, model.OrderStatusShipped)
	require.ErrorIs(suite.T(), err, ErrInvalidTransition)

	order, err := suite.adminService.UpdateOrderStatus(ctx, suite.order.OrderID, model.OrderStatusPaid)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPaid, order.Status)

	// 不允許退回 pending
	_, err = suite.adminService.UpdateOrderStatus(ctx, suite.order.OrderID, model.OrderStatusPending)
	require.ErrorIs(suite.T(), err, ErrInvalidTransition)

	for _, next := range []model.OrderStatus{
		model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCompleted,
	} {
		order, err = suite.adminService.UpdateOrderStatus(ctx, suite.order.OrderID, next)
		require.NoError(suite.T(), err)
		require.Equal(suite.T(), next, order.Status)
	}

	// completed 為終態
	_, err = suite.adminService.UpdateOrderStatus(ctx, suite.order.OrderID, model.OrderStatusCanceled)
	require.ErrorIs(suite.T(), err, ErrInvalidTransition)
}

func (suite *AdminServiceTestSuite) TestUpdateOrderStatusValidation() {
	ctx := context.Background()

	_, err := suite.adminService.UpdateOrderStatus(ctx, suite.order.OrderID, "refunded")
	require.Error(suite.T(), err)

	_, err = suite.adminService.UpdateOrderStatus(ctx, 9999, model.OrderStatusPaid)
	require.ErrorIs(suite.T(), err, ErrOrderNotFound)
}

func (suite *AdminServiceTestSuite) TestAdminDeletes() {
	ctx := context.Background()

	require.ErrorIs(suite.T(), suite.adminService.DeleteUser(ctx, 9999), ErrUserNotFound)
	require.ErrorIs(suite.T(), suite.adminService.DeleteArtwork(ctx, 9999), ErrArtworkNotFound)

	require.NoError(suite.T(), suite.adminService.DeleteArtwork(ctx, suite.artwork.ArtworkID))
	require.ErrorIs(suite.T(), suite.adminService.DeleteArtwork(ctx, suite.artwork.ArtworkID), ErrArtworkNotFound)

	require.NoError(suite.T(), suite.adminService.DeleteUser(ctx, suite.buyer.UserID))
	users, err := suite.adminService.GetAllUsers(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 1)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
