package auth

import (
	"github.com/softfruver/fruver-ledger/internal/application/dto"
	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
	"github.com/softfruver/fruver-ledger/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login de usuarios. La autorización del resto de la API es un
// predicado en el borde HTTP (middleware); los servicios del ledger asumen
// que quien los llama ya pasó por aquí.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt y emite un JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.PorUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if !u.Activo {
		return nil, domain.ErrNoAutorizado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Username, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: u.Username, Rol: u.Rol}, nil
}
