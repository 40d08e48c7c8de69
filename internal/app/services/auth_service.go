package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dishabharti/campus/internal/app/models"
	"github.com/dishabharti/campus/internal/app/models/dto"
	"github.com/dishabharti/campus/internal/app/store"
	"github.com/dishabharti/campus/internal/persistence"
	"github.com/dishabharti/campus/internal/pkg/apperrors"
	"github.com/dishabharti/campus/internal/pkg/auth"
)

// AdminCredentials are the configured console credentials. Comparison is a
// plaintext string match, exactly like the system this replaces; real
// credential handling is an explicit non-goal here.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthService handles login for both consoles and student self-registration
type AuthService struct {
	store      *store.Store
	snap       snapshotter
	jwtService *auth.JWTService
	admin      AdminCredentials
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(st *store.Store, adapter persistence.Adapter, jwtService *auth.JWTService, admin AdminCredentials, logger zerolog.Logger) *AuthService {
	return &AuthService{
		store:      st,
		snap:       snapshotter{store: st, adapter: adapter},
		jwtService: jwtService,
		admin:      admin,
		logger:     logger,
	}
}

// Login checks credentials for the requested role and issues a session token
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	if req.Role == string(models.RoleAdmin) {
		if req.Email != s.admin.Email || req.Password != s.admin.Password {
			return dto.AuthResponse{}, apperrors.ErrInvalidCredentials
		}
		token, expiresIn, err := s.jwtService.GenerateToken(models.RoleAdmin, req.Email, "")
		if err != nil {
			return dto.AuthResponse{}, err
		}
		s.logger.Info().Str("email", req.Email).Msg("Admin login")
		return dto.AuthResponse{
			Token: dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: expiresIn},
			Role:  string(models.RoleAdmin),
		}, nil
	}

	st, err := s.store.FindStudentByEmail(req.Email)
	if err != nil || st.Password != req.Password {
		// Same error for unknown email and wrong password
		return dto.AuthResponse{}, apperrors.ErrInvalidCredentials
	}
	token, expiresIn, err := s.jwtService.GenerateToken(models.RoleStudent, st.Email, st.ID)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	s.logger.Info().Str("studentId", st.StudentID).Msg("Student login")
	resp := dto.NewStudentResponse(st)
	return dto.AuthResponse{
		Token:   dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: expiresIn},
		Role:    string(models.RoleStudent),
		Student: &resp,
	}, nil
}

// Register creates a student record from the portal's self-registration
// form and signs the new student in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error) {
	if _, err := s.store.FindStudentByEmail(req.Email); err == nil {
		return dto.AuthResponse{}, apperrors.ErrEmailExists
	} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return dto.AuthResponse{}, err
	}

	st, err := s.store.UpsertStudent(models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Registration: models.Registration{
			Status: models.RegistrationNotStarted,
		},
	})
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if err := s.snap.persist(ctx); err != nil {
		return dto.AuthResponse{}, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(models.RoleStudent, st.Email, st.ID)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	s.logger.Info().Str("studentId", st.StudentID).Msg("Student registered")
	resp := dto.NewStudentResponse(st)
	return dto.AuthResponse{
		Token:   dto.TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresIn: expiresIn},
		Role:    string(models.RoleStudent),
		Student: &resp,
	}, nil
}
