package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserRepoTestSuite struct {
	suite.Suite
	dbDao    *DbDao
	userRepo *UserRepo
}

func (suite *UserRepoTestSuite) SetupSuite() {
	suite.dbDao = newTestDbDao(suite.T())
	suite.userRepo = NewUserRepo(suite.dbDao)
}

func (suite *UserRepoTestSuite) SetupTest() {
	suite.dbDao.Exec("DELETE FROM users")
}

func (suite *UserRepoTestSuite) TestCreateUser() {
	code := "verify-123"
	user := &model.User{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "jane@example.com",
		HashedPassword:   "hashed",
		Role:             model.RoleBuyer,
		VerificationCode: &code,
	}

	created, err := suite.userRepo.CreateUser(context.Background(), user)

	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), created.UserID)
	require.False(suite.T(), created.IsVerified)
	require.False(suite.T(), created.CreatedAt.IsZero())
}

func (suite *UserRepoTestSuite) TestCreateUserDuplicateEmail() {
	ctx := context.Background()
	code1, code2 := "verify-1", "verify-2"

	_, err := suite.userRepo.CreateUser(ctx, &model.User{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		HashedPassword: "x", VerificationCode: &code1,
	})
	require.NoError(suite.T(), err)

	_, err = suite.userRepo.CreateUser(ctx, &model.User{
		FirstName: "John", LastName: "Doe", Email: "jane@example.com",
		HashedPassword: "x", VerificationCode: &code2,
	})
	require.Error(suite.T(), err)
}

func (suite *UserRepoTestSuite) TestGetUserByVerificationCode() {
	ctx := context.Background()
	code := "verify-abc"

	created, err := suite.userRepo.CreateUser(ctx, &model.User{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		HashedPassword: "x", VerificationCode: &code,
	})
	require.NoError(suite.T(), err)

	found, err := suite.userRepo.GetUserByVerificationCode(ctx, "verify-abc")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), created.UserID, found.UserID)

	_, err = suite.userRepo.GetUserByVerificationCode(ctx, "no-such-code")
	require.Error(suite.T(), err)
}

func (suite *UserRepoTestSuite) TestClearedVerificationCodesDoNotCollide() {
	ctx := context.Background()
	code1, code2 := "verify-1", "verify-2"

	u1, err := suite.userRepo.CreateUser(ctx, &model.User{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		HashedPassword: "x", VerificationCode: &code1,
	})
	require.NoError(suite.T(), err)

	// 驗證完成清空 code, 多個 NULL 不觸發唯一索引
	u1.IsVerified = true
	u1.VerificationCode = nil
	require.NoError(suite.T(), suite.userRepo.UpdateUser(ctx, u1))

	u2, err := suite.userRepo.CreateUser(ctx, &model.User{
		FirstName: "John", LastName: "Smith", Email: "john@example.com",
		HashedPassword: "x", VerificationCode: &code2,
	})
	require.NoError(suite.T(), err)

	u2.IsVerified = true
	u2.VerificationCode = nil
	require.NoError(suite.T(), suite.userRepo.UpdateUser(ctx, u2))
}

func TestUserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}
