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

type BuyerServiceTestSuite struct {
	suite.Suite
	dbDao         *db.DbDao
	artworkRepo   *db.ArtworkRepo
	buyerService  IBuyerService
	artistService IArtistService

	buyer   model.User
	artist  model.User
	artwork model.Artwork
}

func (suite *BuyerServiceTestSuite) SetupSuite() {
	suite.dbDao = newTestDbDao(suite.T())
	suite.artworkRepo = db.NewArtworkRepo(suite.dbDao)
	cartRepo := db.NewCartRepo(suite.dbDao)
	orderRepo := db.NewOrderRepo(suite.dbDao)

	// 無 redis / kafka 配置下的行為必須與有配置時一致
	suite.buyerService = NewBuyerService(suite.artworkRepo, cartRepo, orderRepo, nil, nil)
	suite.artistService = NewArtistService(suite.artworkRepo, nil)
}

func (suite *BuyerServiceTestSuite) SetupTest() {
	cleanTables(suite.dbDao)

	suite.buyer = model.User{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com",
		HashedPassword: "x", Role: model.RoleBuyer, IsVerified: true,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.buyer).Error)

	suite.artist = model.User{
		FirstName: "Vincent", LastName: "Gogh", Email: "vincent@x.com",
		HashedPassword: "x", Role: model.RoleArtist, IsVerified: true,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.artist).Error)

	suite.artwork = model.Artwork{
		Name: "Sunrise", Description: "oil on canvas",
		Price: decimal.NewFromInt(100), ImageURL: "http://img/sunrise.png",
		Category: "painting", IsAvailable: true, ArtistID: suite.artist.UserID,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&suite.artwork).Error)
}

func (suite *BuyerServiceTestSuite) TestBrowseOnlyAvailableArtworks() {
	ctx := context.Background()

	hidden := model.Artwork{
		Name: "Hidden", Description: "sold out",
		Price: decimal.NewFromInt(50), ImageURL: "http://img/hidden.png",
		Category: "painting", IsAvailable: false, ArtistID: suite.artist.UserID,
	}
	require.NoError(suite.T(), suite.dbDao.Create(&hidden).Error)

	artworks, err := suite.buyerService.BrowseAvailableArtworks(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), artworks, 1)
	require.Equal(suite.T(), suite.artwork.ArtworkID, artworks[0].ArtworkID)
}

func (suite *BuyerServiceTestSuite) TestAddToCartMergesSameArtwork() {
	ctx := context.Background()

	_, err := suite.buyerService.AddToCart(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 2)
	require.NoError(suite.T(), err)

	cart, err := suite.buyerService.AddToCart(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 3)
	require.NoError(suite.T(), err)

	require.Len(suite.T(), cart.Items, 1)
	require.Equal(suite.T(), 5, cart.Items[0].Quantity)
	require.True(suite.T(), decimal.NewFromInt(500).Equal(cart.Items[0].Subtotal))
}

func (suite *BuyerServiceTestSuite) TestAddToCartValidation() {
	ctx := context.Background()

	_, err := suite.buyerService.AddToCart(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 0)
	require.ErrorIs(suite.T(), err, ErrInvalidQuantity)

	_, err = suite.buyerService.AddToCart(ctx, suite.buyer.UserID, 9999, 1)
	require.ErrorIs(suite.T(), err, ErrArtworkNotFound)
}

func (suite *BuyerServiceTestSuite) TestRemoveFromCartSilentMiss() {
	ctx := context.Background()

	cart, err := suite.buyerService.AddToCart(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 1)
	require.NoError(suite.T(), err)

	removed, err := suite.buyerService.RemoveFromCart(ctx, cart.CartID, suite.artwork.ArtworkID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), removed)

	removed, err = suite.buyerService.RemoveFromCart(ctx, cart.CartID, suite.artwork.ArtworkID)
	require.NoError(suite.T(), err)
	require.False(suite.T(), removed)
}

func (suite *BuyerServiceTestSuite) TestClearCartTwice() {
	ctx := context.Background()

	cart, err := suite.buyerService.AddToCart(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 2)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.buyerService.ClearCart(ctx, cart.CartID))
	require.NoError(suite.T(), suite.buyerService.ClearCart(ctx, cart.CartID))

	reloaded, err := suite.buyerService.GetCart(ctx, suite.buyer.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reloaded.Items, 0)
}

func (suite *BuyerServiceTestSuite) TestPlaceOrderSnapshotsPrice() {
	ctx := context.Background()

	order, err := suite.buyerService.PlaceOrder(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 2)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPending, order.Status)
	require.True(suite.T(), decimal.NewFromInt(200).Equal(order.TotalPrice))

	// 改價不影響既有訂單
	newPrice := decimal.NewFromInt(150)
	_, err = suite.artistService.UpdateArtwork(ctx, suite.artist.UserID, suite.artwork.ArtworkID,
		UpdateArtworkParams{Price: &newPrice})
	require.NoError(suite.T(), err)

	orders, err := suite.buyerService.GetMyOrders(ctx, suite.buyer.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 1)
	require.True(suite.T(), decimal.NewFromInt(200).Equal(orders[0].TotalPrice))

	// 新訂單吃新價格
	newOrder, err := suite.buyerService.PlaceOrder(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 2)
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.NewFromInt(300).Equal(newOrder.TotalPrice))
}

func (suite *BuyerServiceTestSuite) TestPlaceOrderUnavailableArtwork() {
	ctx := context.Background()

	unavailable := false
	_, err := suite.artistService.UpdateArtwork(ctx, suite.artist.UserID, suite.artwork.ArtworkID,
		UpdateArtworkParams{IsAvailable: &unavailable})
	require.NoError(suite.T(), err)

	_, err = suite.buyerService.PlaceOrder(ctx, suite.buyer.UserID, suite.artwork.ArtworkID, 1)
	require.ErrorIs(suite.T(), err, ErrArtworkNotFound)

	// 失敗的下單不能留下訂單列
	var count int64
	suite.dbDao.Model(&model.Order{}).Count(&count)
	require.Equal(suite.T(), int64(0), count)
}

func (suite *BuyerServiceTestSuite) TestGetCartBeforeFirstAdd() {
	_, err := suite.buyerService.GetCart(context.Background(), suite.buyer.UserID)
	require.ErrorIs(suite.T(), err, ErrCartNotFound)
}

func TestBuyerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuyerServiceTestSuite))
}
