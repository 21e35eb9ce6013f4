package commands

import (
	"context"
	"log/slog"

	"bikepacking-api/internal/domain/auth"
	"bikepacking-api/internal/domain/user"
	reqdto "bikepacking-api/internal/handler/dto/request"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/pkg/jwt"
	"bikepacking-api/internal/pkg/password"
	"bikepacking-api/internal/usecase/queries"
	"bikepacking-api/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidUser          = errs.New("invalid user data")
)

type LoginResult struct {
	AccessToken string
	User        *queries.UserView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Signup(ctx context.Context, req reqdto.SignupRequest) (*queries.UserView, error)
	// CreateUser is the admin path; it may assign any role.
	CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{AccessToken: token, User: view}, nil
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*queries.UserView, error) {
	v, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}
	return a.create(ctx, v)
}

func (a *authCommandsImpl) CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error) {
	v, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUser)
	}
	return a.create(ctx, v)
}

func (a *authCommandsImpl) create(ctx context.Context, v reqdto.Validated) (*queries.UserView, error) {
	hash, err := password.HashPassword(v.Credentials.Secret())
	if err != nil {
		return nil, err
	}
	u := user.NewUser(v.Credentials.Email(), hash, v.Name, v.Age, v.Role)

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, tx.DB(), u)
		if err != nil {
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	slog.Info("user created", "user_id", id, "role", v.Role.String())
	return a.readStore.FindByID(ctx, id)
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.UserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Secret()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
