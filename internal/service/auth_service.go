package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/config"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoUsuarioRequest) error
}

type authService struct {
	repo     repository.UsuarioRepository
	catalogo repository.CatalogoRepository
	cfg      *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, catalogo repository.CatalogoRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, catalogo: catalogo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// Same message for unknown user and wrong password.
	user, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil {
		return nil, apierror.InvalidArgument("credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.InvalidArgument("credenciales inválidas")
	}
	if user.Estado != nil && user.Estado.Estado == model.EstadoInactivo {
		return nil, apierror.InvalidArgument("el usuario está inactivo")
	}

	expira := time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)
	token, err := s.generateToken(user, expira)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expira.Format(time.RFC3339),
		Usuario:   *usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, expira time.Time) (string, error) {
	rol := ""
	if user.Rol != nil {
		rol = user.Rol.Rol
	}
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"nombre":  user.Nombre,
		"rol":     rol,
		"exp":     expira.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	rolID, err := uuid.Parse(req.RolID)
	if err != nil {
		return nil, apierror.InvalidArgument("rol_id inválido")
	}
	rol, err := s.catalogo.RolPorID(ctx, rolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("rol no encontrado")
		}
		return nil, apierror.Unexpected(err)
	}
	if _, err := s.repo.FindByNombre(ctx, req.Nombre); err == nil {
		return nil, apierror.Conflict("ya existe un usuario con el nombre %s", req.Nombre)
	}
	activo, err := s.catalogo.EstadoPorNombre(ctx, model.EstadoActivo)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	user := &model.Usuario{
		Nombre:       req.Nombre,
		PasswordHash: string(hash),
		Telefono:     req.Telefono,
		RolID:        rolID,
		EstadoID:     activo.ID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apierror.Unexpected(err)
	}

	resp := usuarioToResponse(user)
	resp.Rol = rol.Rol
	resp.Estado = model.EstadoActivo
	return resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Unexpected(err)
	}
	out := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		out = append(out, *usuarioToResponse(&users[i]))
	}
	return out, nil
}

func (s *authService) CambiarEstado(ctx context.Context, id uuid.UUID, req dto.CambiarEstadoUsuarioRequest) error {
	estadoID, err := uuid.Parse(req.EstadoID)
	if err != nil {
		return apierror.InvalidArgument("estado_id inválido")
	}
	if _, err := s.catalogo.EstadoPorID(ctx, estadoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("estado no encontrado")
		}
		return apierror.Unexpected(err)
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("usuario no encontrado")
		}
		return apierror.Unexpected(err)
	}
	if err := s.repo.UpdateEstado(ctx, id, estadoID); err != nil {
		return apierror.Unexpected(err)
	}
	return nil
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	resp := &dto.UsuarioResponse{
		ID:       u.ID.String(),
		Nombre:   u.Nombre,
		Telefono: u.Telefono,
	}
	if u.Rol != nil {
		resp.Rol = u.Rol.Rol
	}
	if u.Estado != nil {
		resp.Estado = u.Estado.Estado
	}
	return resp
}
