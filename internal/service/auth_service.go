package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"csgobeans/internal/config"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	SteamLogin(ctx context.Context, externalID string) (*model.LoginResponse, error)
	BindExternalIdentity(ctx context.Context, userID uuid.UUID, externalID string) error
	ResolveExternalIdentity(ctx context.Context, externalID string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	identityRepo repository.IdentityRepository
	cfg          *config.Config
}

// NewAuthService は AuthService の新しいインスタンスを生成します
func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, identityRepo repository.IdentityRepository, cfg *config.Config) AuthService {
	return &authService{
		db:           db,
		userRepo:     userRepo,
		identityRepo: identityRepo,
		cfg:          cfg,
	}
}

// Register は新しいユーザーをローカル認証で登録します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ユーザー名での重複チェック
		_, err := s.userRepo.FindByUsername(ctx, tx, req.Username)
		if err == nil {
			logger.Warn("Username already exists", "username", req.Username)
			return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check username existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}
		hash := string(hashedPassword)

		user := &model.User{
			UserID:       uuid.New(),
			Username:     req.Username,
			PasswordHash: &hash,
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID, "username", newUser.Username)
	return newUser, nil
}

// Login はユーザー名とパスワードを検証し、JWTを返します。
// 未知のユーザー名とパスワード不一致は同じ応答にする (存在の推測を防ぐ)
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("username", req.Username)

	user, err := s.userRepo.FindByUsername(ctx, s.db, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "ユーザー名またはパスワードが正しくありません。", "", model.ErrInvalidInput)
		}
		logger.Error("Login failed: db error on FindByUsername", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	// 外部認証のみのユーザーはローカルパスワードを持たない
	if user.PasswordHash == nil {
		logger.Warn("Login failed: user has no local password", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "ユーザー名またはパスワードが正しくありません。", "", model.ErrInvalidInput)
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password))
	if err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "ユーザー名またはパスワードが正しくありません。", "", model.ErrInvalidInput)
	}

	resp, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return resp, nil
}

// SteamLogin は検証済みの外部IDでログインします。
// 初回ログイン時はユーザー作成とID紐付けを1トランザクションで行う
func (s *authService) SteamLogin(ctx context.Context, externalID string) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("external_id", externalID)

	if externalID == "" {
		return nil, model.NewAppError("INVALID_INPUT", "外部IDが指定されていません。", "external_id", model.ErrInvalidInput)
	}

	var user *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		identity, err := s.identityRepo.FindByExternalID(ctx, tx, externalID)
		if err == nil {
			// 既存の紐付けあり
			user, err = s.userRepo.FindByID(ctx, tx, identity.UserID)
			if err != nil {
				logger.Error("Failed to load user for external identity", "error", err, "user_id", identity.UserID)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
			}
			return nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to resolve external identity", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}

		// 初回ログイン: パスワードなしのユーザーを作成して紐付ける
		newUser := &model.User{
			UserID:   uuid.New(),
			Username: fmt.Sprintf("steam_%s", externalID),
		}
		if err := s.userRepo.Create(ctx, tx, newUser); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during external user creation", "error", err)
				return model.NewAppError("DUPLICATE_USERNAME", "そのユーザー名は既に使用されています。", "username", model.ErrConflict)
			}
			logger.Error("Failed to create external user", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}

		if err := s.identityRepo.Create(ctx, tx, &model.ExternalIdentity{
			ExternalID: externalID,
			UserID:     newUser.UserID,
		}); err != nil {
			// 同じ外部IDの同時初回ログインに負けた場合もここに来る
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during identity creation (race condition)", "error", err)
				return model.NewAppError("ALREADY_BOUND", "この外部IDは既に別のユーザーに紐付いています。", "external_id", model.ErrConflict)
			}
			logger.Error("Failed to create external identity", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "外部IDの紐付けに失敗しました。", "", err)
		}

		user = newUser
		return nil
	})

	if err != nil {
		return nil, err
	}

	resp, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("Steam login successful", "user_id", user.UserID)
	return resp, nil
}

// BindExternalIdentity は既存ユーザーに外部IDを紐付けます。
// 同一ユーザーへの再紐付けは何もしない (冪等)
func (s *authService) BindExternalIdentity(ctx context.Context, userID uuid.UUID, externalID string) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "external_id", externalID)

	if externalID == "" {
		return model.NewAppError("INVALID_INPUT", "外部IDが指定されていません。", "external_id", model.ErrInvalidInput)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		identity, err := s.identityRepo.FindByExternalID(ctx, tx, externalID)
		if err == nil {
			if identity.UserID == userID {
				return nil
			}
			logger.Warn("External ID already bound to another user", "bound_user_id", identity.UserID)
			return model.NewAppError("ALREADY_BOUND", "この外部IDは既に別のユーザーに紐付いています。", "external_id", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check external identity", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
		}

		if err := s.identityRepo.Create(ctx, tx, &model.ExternalIdentity{
			ExternalID: externalID,
			UserID:     userID,
		}); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during identity binding (race condition)", "error", err)
				return model.NewAppError("ALREADY_BOUND", "この外部IDは既に別のユーザーに紐付いています。", "external_id", model.ErrConflict)
			}
			logger.Error("Failed to bind external identity", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "外部IDの紐付けに失敗しました。", "", err)
		}

		logger.Info("External identity bound")
		return nil
	})
}

// ResolveExternalIdentity は外部IDから内部ユーザーIDを引きます
func (s *authService) ResolveExternalIdentity(ctx context.Context, externalID string) (uuid.UUID, error) {
	identity, err := s.identityRepo.FindByExternalID(ctx, s.db, externalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return identity.UserID, nil
}

// GetUser は指定されたIDのユーザーを取得します
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("User not found", "user_id", userID.String())
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error finding user by ID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}
	return user, nil
}

// --- ヘルパー関数 ---

func (s *authService) issueToken(ctx context.Context, user *model.User) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	claims := &jwt.RegisteredClaims{
		Issuer:    s.cfg.App.Name,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWT.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました。", "", err)
	}

	return &model.LoginResponse{
		AccessToken: signedToken,
		User:        model.NewUserResponse(user),
	}, nil
}
