package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/artmarket/internal/api"
	"github.com/RoyceAzure/lab/artmarket/internal/api/dto"
	"github.com/RoyceAzure/lab/artmarket/internal/apperr"
	"github.com/RoyceAzure/lab/artmarket/internal/config"
	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/RoyceAzure/lab/artmarket/internal/service"
	"github.com/RoyceAzure/lab/artmarket/internal/token"
)

type UserHandler struct {
	userService service.IUserService
	tokenMaker  token.Maker
	cf          *config.Config
}

func NewUserHandler(userService service.IUserService, tokenMaker token.Maker, cf *config.Config) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	if tokenMaker == nil {
		panic("tokenMaker cannot be nil")
	}
	return &UserHandler{
		userService: userService,
		tokenMaker:  tokenMaker,
		cf:          cf,
	}
}

// Register 註冊
// POST /api/v1/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerDTO dto.RegisterUserDTO
	if err := json.NewDecoder(r.Body).Decode(&registerDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()

	user, err := h.userService.Register(ctx, service.RegisterParams{
		FirstName:       registerDTO.FirstName,
		LastName:        registerDTO.LastName,
		Email:           registerDTO.Email,
		Password:        registerDTO.Password,
		ConfirmPassword: registerDTO.ConfirmPassword,
		Role:            model.UserRole(registerDTO.Role),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserModelToDTO(*user), nil)
}

// Verify 以驗證碼啟用帳號
// GET /api/v1/users/verify?code=xxx
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	ctx := r.Context()

	if err := h.userService.VerifyUser(ctx, code); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}

// Login 登入並簽發 access token
// POST /api/v1/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&loginDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	ctx := r.Context()

	user, err := h.userService.Login(ctx, loginDTO.Email, loginDTO.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	accessToken, _, err := h.tokenMaker.CreateToken(user.UserID, user.Email, user.Role, h.cf.AccessTokenDuration)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     accessToken,
			ExpiresIn: int(h.cf.AccessTokenDuration.Seconds()),
		},
		User: dto.ConvertUserModelToDTO(*user),
	}, nil)
}

// Me 取得當前登入用戶
// GET /api/v1/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), payload.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserModelToDTO(*user), nil)
}

// UpdateMe 更新當前登入用戶
// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	var updateDTO dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, int(apperr.BadRequestCode), err, apperr.ErrStrMap[apperr.BadRequestCode])
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), payload.UserID, service.UpdateUserParams{
		FirstName: updateDTO.FirstName,
		LastName:  updateDTO.LastName,
		Password:  updateDTO.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.ConvertUserModelToDTO(*user), nil)
}

// DeleteMe 刪除當前登入用戶
// DELETE /api/v1/users/me
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	payload := mustGetPayload(w, r)
	if payload == nil {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), payload.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
